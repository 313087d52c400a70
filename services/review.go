package services

import (
	"errors"

	"garagepro-backend/models"
	"garagepro-backend/repository"

	"go.uber.org/zap"
)

// ReviewService creates and lists booking reviews. A review exists only for
// a finished booking, once, and is immutable afterwards.
type ReviewService struct {
	store repository.Store
	log   *zap.Logger
}

func NewReviewService(store repository.Store, log *zap.Logger) *ReviewService {
	return &ReviewService{store: store, log: log}
}

func (s *ReviewService) Create(bookingID uint, rating int, comment string, actor ActingUser) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, validationErr("rating must be between 1 and 5")
	}

	booking, err := s.store.Bookings().FindByID(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Review{}, notFoundErr("booking not found")
		}
		return models.Review{}, unavailableErr(err)
	}
	if booking.Vehicle == nil || booking.Vehicle.UserID != actor.ID {
		return models.Review{}, forbiddenErr("only the booking owner may review it")
	}
	if booking.StatusID != models.StatusDone {
		return models.Review{}, validationErr("booking is not done yet")
	}

	review := models.Review{
		BookingID: bookingID,
		UserID:    actor.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.store.Reviews().Create(&review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Review{}, conflictErr("booking is already reviewed")
		}
		return models.Review{}, unavailableErr(err)
	}
	s.log.Info("review created",
		zap.Uint("booking_id", bookingID),
		zap.Int("rating", rating))
	return review, nil
}

func (s *ReviewService) GetByBooking(bookingID uint) (models.Review, error) {
	review, err := s.store.Reviews().FindByBooking(bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Review{}, notFoundErr("no review for this booking")
		}
		return models.Review{}, unavailableErr(err)
	}
	return review, nil
}

func (s *ReviewService) List() ([]models.Review, error) {
	reviews, err := s.store.Reviews().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return reviews, nil
}
