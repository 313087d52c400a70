package services

import (
	"errors"
	"strings"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
	"garagepro-backend/utils"

	"go.uber.org/zap"
)

// CustomerService covers registration, login checks, profiles, and the
// admin-side customer management (ban/unban, delete).
type CustomerService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCustomerService(store repository.Store, log *zap.Logger) *CustomerService {
	return &CustomerService{store: store, log: log}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

func (s *CustomerService) Register(input RegisterInput) (models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Name == "" {
		return models.User{}, validationErr("email and name are required")
	}
	if len(input.Password) < 8 {
		return models.User{}, validationErr("password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, unavailableErr(err)
	}
	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     input.Name,
		Phone:    input.Phone,
		Role:     models.RoleCustomer,
	}
	if err := s.store.Users().Create(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, conflictErr("email already registered")
		}
		return models.User{}, unavailableErr(err)
	}
	s.log.Info("customer registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Authenticate verifies credentials. Banned accounts are refused even with
// a correct password.
func (s *CustomerService) Authenticate(email, password string) (models.User, error) {
	user, err := s.store.Users().FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, validationErr("invalid credentials")
		}
		return models.User{}, unavailableErr(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return models.User{}, validationErr("invalid credentials")
	}
	if user.IsBanned() {
		reason := "account banned"
		if user.BanReason != nil && *user.BanReason != "" {
			reason = "account banned: " + *user.BanReason
		}
		return models.User{}, forbiddenErr("%s", reason)
	}
	return user, nil
}

func (s *CustomerService) Get(userID uint, actor ActingUser) (models.User, error) {
	if !actor.IsAdmin() && actor.ID != userID {
		return models.User{}, forbiddenErr("not your profile")
	}
	user, err := s.store.Users().FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.User{}, notFoundErr("customer not found")
		}
		return models.User{}, unavailableErr(err)
	}
	return user, nil
}

func (s *CustomerService) List(actor ActingUser) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, forbiddenErr("admin only")
	}
	users, err := s.store.Users().ListByRole(models.RoleCustomer)
	if err != nil {
		return nil, unavailableErr(err)
	}
	return users, nil
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

func (s *CustomerService) UpdateProfile(userID uint, input UpdateProfileInput, actor ActingUser) (models.User, error) {
	user, err := s.Get(userID, actor)
	if err != nil {
		return models.User{}, err
	}
	if input.Name != nil {
		if *input.Name == "" {
			return models.User{}, validationErr("name is required")
		}
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if err := s.store.Users().Update(&user); err != nil {
		return models.User{}, unavailableErr(err)
	}
	return user, nil
}

func (s *CustomerService) ChangePassword(userID uint, oldPassword, newPassword string, actor ActingUser) error {
	if actor.ID != userID {
		return forbiddenErr("not your account")
	}
	user, err := s.Get(userID, actor)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, user.Password) {
		return validationErr("current password is incorrect")
	}
	if len(newPassword) < 8 {
		return validationErr("password must be at least 8 characters")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return unavailableErr(err)
	}
	user.Password = hashed
	if err := s.store.Users().Update(&user); err != nil {
		return unavailableErr(err)
	}
	s.log.Info("password changed", zap.Uint("user_id", userID))
	return nil
}

func (s *CustomerService) Ban(userID uint, reason string, actor ActingUser) (models.User, error) {
	if !actor.IsAdmin() {
		return models.User{}, forbiddenErr("admin only")
	}
	user, err := s.Get(userID, actor)
	if err != nil {
		return models.User{}, err
	}
	if user.Role == models.RoleAdmin {
		return models.User{}, validationErr("cannot ban an admin account")
	}
	now := time.Now().UTC()
	user.BanReason = &reason
	user.BannedAt = &now
	if err := s.store.Users().Update(&user); err != nil {
		return models.User{}, unavailableErr(err)
	}
	s.log.Warn("customer banned", zap.Uint("user_id", userID), zap.String("reason", reason))
	return user, nil
}

func (s *CustomerService) Unban(userID uint, actor ActingUser) (models.User, error) {
	if !actor.IsAdmin() {
		return models.User{}, forbiddenErr("admin only")
	}
	user, err := s.Get(userID, actor)
	if err != nil {
		return models.User{}, err
	}
	user.BanReason = nil
	user.BannedAt = nil
	if err := s.store.Users().Update(&user); err != nil {
		return models.User{}, unavailableErr(err)
	}
	s.log.Info("customer unbanned", zap.Uint("user_id", userID))
	return user, nil
}

// Delete removes a customer account. Accounts still referenced by vehicles
// (and through them bookings) are kept; ban instead.
func (s *CustomerService) Delete(userID uint, actor ActingUser) error {
	if !actor.IsAdmin() {
		return forbiddenErr("admin only")
	}
	if _, err := s.Get(userID, actor); err != nil {
		return err
	}
	n, err := s.store.Vehicles().CountByOwner(userID)
	if err != nil {
		return unavailableErr(err)
	}
	if n > 0 {
		return conflictErr("customer owns %d vehicle(s) and cannot be deleted", n)
	}
	if err := s.store.Users().Delete(userID); err != nil {
		return unavailableErr(err)
	}
	s.log.Info("customer deleted", zap.Uint("user_id", userID))
	return nil
}
