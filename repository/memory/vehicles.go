package memory

import (
	"sort"
	"time"

	"garagepro-backend/models"
	"garagepro-backend/repository"
)

type vehicleRepo struct {
	s *Store
}

// attach resolves owner/brand/type associations the way the gorm store
// preloads them.
func (r *vehicleRepo) attach(v models.Vehicle) models.Vehicle {
	if owner, ok := r.s.d.users[v.UserID]; ok {
		o := owner
		v.Owner = &o
	}
	if brand, ok := r.s.d.brands[v.BrandID]; ok {
		b := brand
		v.Brand = &b
	}
	if typ, ok := r.s.d.types[v.TypeID]; ok {
		t := typ
		v.Type = &t
	}
	return v
}

func (r *vehicleRepo) Create(vehicle *models.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, v := range r.s.d.vehicles {
		if v.LicensePlate == vehicle.LicensePlate {
			return repository.ErrDuplicate
		}
	}
	r.s.d.nextVehicle++
	vehicle.ID = r.s.d.nextVehicle
	now := time.Now().UTC()
	vehicle.CreatedAt = now
	vehicle.UpdatedAt = now
	stored := *vehicle
	stored.Owner, stored.Brand, stored.Type = nil, nil, nil
	r.s.d.vehicles[vehicle.ID] = stored
	return nil
}

func (r *vehicleRepo) FindByID(id uint) (models.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.d.vehicles[id]
	if !ok {
		return models.Vehicle{}, repository.ErrNotFound
	}
	return r.attach(v), nil
}

func (r *vehicleRepo) ListByOwner(userID uint) ([]models.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var vehicles []models.Vehicle
	for _, v := range r.s.d.vehicles {
		if v.UserID == userID {
			vehicles = append(vehicles, r.attach(v))
		}
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

func (r *vehicleRepo) List() ([]models.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var vehicles []models.Vehicle
	for _, v := range r.s.d.vehicles {
		vehicles = append(vehicles, r.attach(v))
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}

func (r *vehicleRepo) Update(vehicle *models.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.vehicles[vehicle.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, v := range r.s.d.vehicles {
		if v.LicensePlate == vehicle.LicensePlate && v.ID != vehicle.ID {
			return repository.ErrDuplicate
		}
	}
	vehicle.UpdatedAt = time.Now().UTC()
	stored := *vehicle
	stored.Owner, stored.Brand, stored.Type = nil, nil, nil
	r.s.d.vehicles[vehicle.ID] = stored
	return nil
}

func (r *vehicleRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.d.vehicles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.d.vehicles, id)
	return nil
}

func (r *vehicleRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.d.vehicles)), nil
}

func (r *vehicleRepo) CountByOwner(userID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, v := range r.s.d.vehicles {
		if v.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *vehicleRepo) CountByBrandID(brandID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, v := range r.s.d.vehicles {
		if v.BrandID == brandID {
			n++
		}
	}
	return n, nil
}

func (r *vehicleRepo) CountByTypeID(typeID uint) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, v := range r.s.d.vehicles {
		if v.TypeID == typeID {
			n++
		}
	}
	return n, nil
}

func (r *vehicleRepo) CountPerBrand() ([]models.LabelCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, v := range r.s.d.vehicles {
		if b, ok := r.s.d.brands[v.BrandID]; ok {
			counts[b.Name]++
		}
	}
	return sortedCounts(counts), nil
}

func (r *vehicleRepo) CountPerType() ([]models.LabelCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, v := range r.s.d.vehicles {
		if t, ok := r.s.d.types[v.TypeID]; ok {
			counts[t.Name]++
		}
	}
	return sortedCounts(counts), nil
}

func sortedCounts(counts map[string]int64) []models.LabelCount {
	var rows []models.LabelCount
	for label, count := range counts {
		rows = append(rows, models.LabelCount{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}
