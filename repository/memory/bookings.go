package memory

import (
	"sort"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type bookingRepo struct {
	s *Store
}

func (r *bookingRepo) attach(b models.Booking) models.Booking {
	if v, ok := r.s.d.vehicles[b.VehicleID]; ok {
		vehicle := (&vehicleRepo{s: r.s}).attach(v)
		b.Vehicle = &vehicle
	}
	if name := models.StatusName(b.StatusID); name != "" {
		b.Status = &models.Status{ID: b.StatusID, Name: name}
	}
	return b
}

func (r *bookingRepo) Create(booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.d.nextBooking++
	booking.ID = r.s.d.nextBooking
	now := time.Now().UTC()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	stored := *booking
	stored.Vehicle, stored.Status = nil, nil
	r.s.d.bookings[booking.ID] = stored
	return nil
}

func (r *bookingRepo) FindByID(id uint) (models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.d.bookings[id]
	if !ok {
		return models.Booking{}, repository.ErrNotFound
	}
	return r.attach(b), nil
}

func (r *bookingRepo) ListByOwner(userID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.s.d.bookings {
		v, ok := r.s.d.vehicles[b.VehicleID]
		if ok && v.UserID == userID {
			bookings = append(bookings, r.attach(b))
		}
	}
	sortRecentFirst(bookings)
	return bookings, nil
}

func (r *bookingRepo) ListByStatus(statusID uint) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.s.d.bookings {
		if b.StatusID == statusID {
			bookings = append(bookings, r.attach(b))
		}
	}
	sortRecentFirst(bookings)
	return bookings, nil
}

func (r *bookingRepo) List() ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var bookings []models.Booking
	for _, b := range r.s.d.bookings {
		bookings = append(bookings, r.attach(b))
	}
	sortRecentFirst(bookings)
	return bookings, nil
}

func (r *bookingRepo) Update(booking *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.bookings[booking.ID]; !ok {
		return repository.ErrNotFound
	}
	booking.UpdatedAt = time.Now().UTC()
	stored := *booking
	stored.Vehicle, stored.Status = nil, nil
	r.s.d.bookings[booking.ID] = stored
	return nil
}

func (r *bookingRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.d.bookings)), nil
}

func (r *bookingRepo) CountByVehicle(vehicleID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, b := range r.s.d.bookings {
		if b.VehicleID == vehicleID {
			n++
		}
	}
	return n, nil
}

func (r *bookingRepo) CountPerStatus() ([]models.LabelCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, b := range r.s.d.bookings {
		if name := models.StatusName(b.StatusID); name != "" {
			counts[name]++
		}
	}
	return sortedCounts(counts), nil
}

// sortRecentFirst orders most recent first, falling back to id when the
// clock ties (common in tests).
func sortRecentFirst(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].CreatedAt.Equal(bookings[j].CreatedAt) {
			return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
		}
		return bookings[i].ID > bookings[j].ID
	})
}
