package memory

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type brandRepo struct {
	s *Store
}

func (r *brandRepo) List() ([]models.VehicleBrand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var brands []models.VehicleBrand
	for _, b := range r.s.d.brands {
		brands = append(brands, b)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].ID < brands[j].ID })
	return brands, nil
}

func (r *brandRepo) FindByID(id uint) (models.VehicleBrand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.d.brands[id]
	if !ok {
		return models.VehicleBrand{}, repository.ErrNotFound
	}
	return b, nil
}

func (r *brandRepo) Create(brand *models.VehicleBrand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.d.nextBrand++
	brand.ID = r.s.d.nextBrand
	r.s.d.brands[brand.ID] = *brand
	return nil
}

func (r *brandRepo) Update(brand *models.VehicleBrand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.brands[brand.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.d.brands[brand.ID] = *brand
	return nil
}

func (r *brandRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.brands[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.brands, id)
	return nil
}

type typeRepo struct {
	s *Store
}

func (r *typeRepo) List() ([]models.VehicleType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var types []models.VehicleType
	for _, t := range r.s.d.types {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}

func (r *typeRepo) FindByID(id uint) (models.VehicleType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.d.types[id]
	if !ok {
		return models.VehicleType{}, repository.ErrNotFound
	}
	return t, nil
}

func (r *typeRepo) Create(t *models.VehicleType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.d.nextType++
	t.ID = r.s.d.nextType
	r.s.d.types[t.ID] = *t
	return nil
}

func (r *typeRepo) Update(t *models.VehicleType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.types[t.ID]; !ok {
		return repository.ErrNotFound
	}
	r.s.d.types[t.ID] = *t
	return nil
}

func (r *typeRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.types[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.types, id)
	return nil
}

type partRepo struct {
	s *Store
}

func (r *partRepo) List() ([]models.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var parts []models.Part
	for _, p := range r.s.d.parts {
		parts = append(parts, p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].ID < parts[j].ID })
	return parts, nil
}

func (r *partRepo) FindByID(id string) (models.Part, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.d.parts[id]
	if !ok {
		return models.Part{}, repository.ErrNotFound
	}
	return p, nil
}

// FindByIDForUpdate is plain FindByID here; the transaction mutex already
// serializes writers.
func (r *partRepo) FindByIDForUpdate(id string) (models.Part, error) {
	return r.FindByID(id)
}

func (r *partRepo) MaxID() (string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	max := 0
	var maxID string
	for id := range r.s.d.parts {
		n, err := strconv.Atoi(strings.TrimPrefix(id, "P"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
			maxID = id
		}
	}
	return maxID, nil
}

func (r *partRepo) Create(part *models.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.parts[part.ID]; ok {
		return repository.ErrDuplicate
	}
	now := time.Now().UTC()
	part.CreatedAt = now
	part.UpdatedAt = now
	r.s.d.parts[part.ID] = *part
	return nil
}

func (r *partRepo) Update(part *models.Part) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.parts[part.ID]; !ok {
		return repository.ErrNotFound
	}
	part.UpdatedAt = time.Now().UTC()
	r.s.d.parts[part.ID] = *part
	return nil
}

func (r *partRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.parts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.parts, id)
	return nil
}

func (r *partRepo) ListBelow(threshold int) ([]models.Part, error) {
	all, _ := r.List()
	var parts []models.Part
	for _, p := range all {
		if p.Quantity < threshold {
			parts = append(parts, p)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Quantity < parts[j].Quantity })
	return parts, nil
}
