package memory

import (
	"sort"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type repairItemRepo struct {
	s *Store
}

func (r *repairItemRepo) Find(bookingID uint, partID string) (models.RepairItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.d.items[itemKey{bookingID, partID}]
	if !ok {
		return models.RepairItem{}, repository.ErrNotFound
	}
	return item, nil
}

func (r *repairItemRepo) ListByBooking(bookingID uint) ([]models.RepairItemLine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var lines []models.RepairItemLine
	for key, item := range r.s.d.items {
		if key.bookingID != bookingID {
			continue
		}
		line := models.RepairItemLine{
			PartID:    item.PartID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  float64(item.Quantity) * item.UnitPrice,
		}
		if p, ok := r.s.d.parts[item.PartID]; ok {
			line.PartName = p.Name
			line.Marque = p.Marque
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].PartID < lines[j].PartID })
	return lines, nil
}

func (r *repairItemRepo) Create(item *models.RepairItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := itemKey{item.BookingID, item.PartID}
	if _, ok := r.s.d.items[key]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.d.items[key] = *item
	return nil
}

func (r *repairItemRepo) Update(item *models.RepairItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := itemKey{item.BookingID, item.PartID}
	if _, ok := r.s.d.items[key]; !ok {
		return repository.ErrNotFound
	}
	item.UpdatedAt = time.Now().UTC()
	r.s.d.items[key] = *item
	return nil
}

func (r *repairItemRepo) Delete(bookingID uint, partID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := itemKey{bookingID, partID}
	if _, ok := r.s.d.items[key]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.items, key)
	return nil
}

func (r *repairItemRepo) CountByPart(partID string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for key := range r.s.d.items {
		if key.partID == partID {
			n++
		}
	}
	return n, nil
}

func (r *repairItemRepo) MaterialCost(bookingID uint) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var total float64
	for key, item := range r.s.d.items {
		if key.bookingID == bookingID {
			total += float64(item.Quantity) * item.UnitPrice
		}
	}
	return total, nil
}

type reviewRepo struct {
	s *Store
}

func (r *reviewRepo) Create(review *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.d.reviews {
		if existing.BookingID == review.BookingID {
			return repository.ErrDuplicate
		}
	}
	r.s.d.nextReview++
	review.ID = r.s.d.nextReview
	review.CreatedAt = time.Now().UTC()
	stored := *review
	stored.Reviewer = nil
	r.s.d.reviews[review.ID] = stored
	return nil
}

func (r *reviewRepo) FindByBooking(bookingID uint) (models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, review := range r.s.d.reviews {
		if review.BookingID == bookingID {
			if u, ok := r.s.d.users[review.UserID]; ok {
				reviewer := u
				review.Reviewer = &reviewer
			}
			return review, nil
		}
	}
	return models.Review{}, repository.ErrNotFound
}

func (r *reviewRepo) List() ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var reviews []models.Review
	for _, review := range r.s.d.reviews {
		if u, ok := r.s.d.users[review.UserID]; ok {
			reviewer := u
			review.Reviewer = &reviewer
		}
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].ID > reviews[j].ID })
	return reviews, nil
}
