package memory

import (
	"sort"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.d.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.s.d.nextUser++
	user.ID = r.s.d.nextUser
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.s.d.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(id uint) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.d.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) FindByEmail(email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.d.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *userRepo) List() ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []models.User
	for _, u := range r.s.d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *userRepo) ListByRole(role string) ([]models.User, error) {
	all, _ := r.List()
	var users []models.User
	for _, u := range all {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *userRepo) Update(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, u := range r.s.d.users {
		if u.Email == user.Email && u.ID != user.ID {
			return repository.ErrDuplicate
		}
	}
	user.UpdatedAt = time.Now().UTC()
	r.s.d.users[user.ID] = *user
	return nil
}

func (r *userRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.users, id)
	return nil
}

func (r *userRepo) CountCustomers() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, u := range r.s.d.users {
		if u.Role == models.RoleCustomer {
			n++
		}
	}
	return n, nil
}
