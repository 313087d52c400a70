package services

import (
	"errors"

	"garagepro-backend/models"
	"garagepro-backend/repository"

	"go.uber.org/zap"
)

// CatalogService manages the parts catalog and the brand/type reference
// tables. Writes are admin-only; reads are open to any authenticated user.
type CatalogService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCatalogService(store repository.Store, log *zap.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

type CreatePartInput struct {
	Name      string
	Marque    string
	Quantity  int
	UnitPrice float64
}

type UpdatePartInput struct {
	Name      *string
	Marque    *string
	Quantity  *int
	UnitPrice *float64
}

func (s *CatalogService) ListParts() ([]models.Part, error) {
	parts, err := s.store.Parts().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return parts, nil
}

func (s *CatalogService) GetPart(partID string) (models.Part, error) {
	part, err := s.store.Parts().FindByID(partID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Part{}, notFoundErr("part %s not found", partID)
		}
		return models.Part{}, unavailableErr(err)
	}
	return part, nil
}

// CreatePart assigns the next sequential code after the highest existing
// one. Runs in a transaction so two concurrent creates cannot claim the
// same code (the second hits the primary-key conflict and surfaces it).
func (s *CatalogService) CreatePart(input CreatePartInput, actor ActingUser) (models.Part, error) {
	if !actor.IsAdmin() {
		return models.Part{}, forbiddenErr("admin only")
	}
	if input.Name == "" {
		return models.Part{}, validationErr("part name is required")
	}
	if input.Quantity < 0 {
		return models.Part{}, validationErr("quantity must not be negative")
	}
	if input.UnitPrice < 0 {
		return models.Part{}, validationErr("unit price must not be negative")
	}

	var part models.Part
	err := s.store.Transaction(func(tx repository.Store) error {
		highest, err := tx.Parts().MaxID()
		if err != nil {
			return unavailableErr(err)
		}
		part = models.Part{
			ID:        models.NextPartID(highest),
			Name:      input.Name,
			Marque:    input.Marque,
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
		}
		if err := tx.Parts().Create(&part); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return conflictErr("part code %s already assigned", part.ID)
			}
			return unavailableErr(err)
		}
		return nil
	})
	if err != nil {
		return models.Part{}, err
	}
	s.log.Info("part created", zap.String("part_id", part.ID), zap.Int("quantity", part.Quantity))
	return part, nil
}

func (s *CatalogService) UpdatePart(partID string, input UpdatePartInput, actor ActingUser) (models.Part, error) {
	if !actor.IsAdmin() {
		return models.Part{}, forbiddenErr("admin only")
	}
	part, err := s.GetPart(partID)
	if err != nil {
		return models.Part{}, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return models.Part{}, validationErr("part name is required")
		}
		part.Name = *input.Name
	}
	if input.Marque != nil {
		part.Marque = *input.Marque
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return models.Part{}, validationErr("quantity must not be negative")
		}
		part.Quantity = *input.Quantity
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return models.Part{}, validationErr("unit price must not be negative")
		}
		part.UnitPrice = *input.UnitPrice
	}

	if err := s.store.Parts().Update(&part); err != nil {
		return models.Part{}, unavailableErr(err)
	}
	return part, nil
}

// DeletePart refuses while repair items still reference the part, so
// historical invoices keep their joins.
func (s *CatalogService) DeletePart(partID string, actor ActingUser) error {
	if !actor.IsAdmin() {
		return forbiddenErr("admin only")
	}
	if _, err := s.GetPart(partID); err != nil {
		return err
	}
	n, err := s.store.RepairItems().CountByPart(partID)
	if err != nil {
		return unavailableErr(err)
	}
	if n > 0 {
		return conflictErr("part %s is referenced by %d repair item(s)", partID, n)
	}
	if err := s.store.Parts().Delete(partID); err != nil {
		return unavailableErr(err)
	}
	return nil
}

func (s *CatalogService) ListBrands() ([]models.VehicleBrand, error) {
	brands, err := s.store.Brands().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return brands, nil
}

func (s *CatalogService) GetBrand(id uint) (models.VehicleBrand, error) {
	brand, err := s.store.Brands().FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.VehicleBrand{}, notFoundErr("brand not found")
		}
		return models.VehicleBrand{}, unavailableErr(err)
	}
	return brand, nil
}

func (s *CatalogService) CreateBrand(name string, actor ActingUser) (models.VehicleBrand, error) {
	if !actor.IsAdmin() {
		return models.VehicleBrand{}, forbiddenErr("admin only")
	}
	if name == "" {
		return models.VehicleBrand{}, validationErr("brand name is required")
	}
	brand := models.VehicleBrand{Name: name}
	if err := s.store.Brands().Create(&brand); err != nil {
		return models.VehicleBrand{}, unavailableErr(err)
	}
	return brand, nil
}

func (s *CatalogService) UpdateBrand(id uint, name string, actor ActingUser) (models.VehicleBrand, error) {
	if !actor.IsAdmin() {
		return models.VehicleBrand{}, forbiddenErr("admin only")
	}
	if name == "" {
		return models.VehicleBrand{}, validationErr("brand name is required")
	}
	brand, err := s.GetBrand(id)
	if err != nil {
		return models.VehicleBrand{}, err
	}
	brand.Name = name
	if err := s.store.Brands().Update(&brand); err != nil {
		return models.VehicleBrand{}, unavailableErr(err)
	}
	return brand, nil
}

func (s *CatalogService) DeleteBrand(id uint, actor ActingUser) error {
	if !actor.IsAdmin() {
		return forbiddenErr("admin only")
	}
	if _, err := s.GetBrand(id); err != nil {
		return err
	}
	n, err := s.store.Vehicles().CountByBrandID(id)
	if err != nil {
		return unavailableErr(err)
	}
	if n > 0 {
		return conflictErr("brand is referenced by %d vehicle(s)", n)
	}
	if err := s.store.Brands().Delete(id); err != nil {
		return unavailableErr(err)
	}
	return nil
}

func (s *CatalogService) ListTypes() ([]models.VehicleType, error) {
	types, err := s.store.Types().List()
	if err != nil {
		return nil, unavailableErr(err)
	}
	return types, nil
}

func (s *CatalogService) GetType(id uint) (models.VehicleType, error) {
	t, err := s.store.Types().FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.VehicleType{}, notFoundErr("type not found")
		}
		return models.VehicleType{}, unavailableErr(err)
	}
	return t, nil
}

func (s *CatalogService) CreateType(name string, actor ActingUser) (models.VehicleType, error) {
	if !actor.IsAdmin() {
		return models.VehicleType{}, forbiddenErr("admin only")
	}
	if name == "" {
		return models.VehicleType{}, validationErr("type name is required")
	}
	t := models.VehicleType{Name: name}
	if err := s.store.Types().Create(&t); err != nil {
		return models.VehicleType{}, unavailableErr(err)
	}
	return t, nil
}

func (s *CatalogService) UpdateType(id uint, name string, actor ActingUser) (models.VehicleType, error) {
	if !actor.IsAdmin() {
		return models.VehicleType{}, forbiddenErr("admin only")
	}
	if name == "" {
		return models.VehicleType{}, validationErr("type name is required")
	}
	t, err := s.GetType(id)
	if err != nil {
		return models.VehicleType{}, err
	}
	t.Name = name
	if err := s.store.Types().Update(&t); err != nil {
		return models.VehicleType{}, unavailableErr(err)
	}
	return t, nil
}

func (s *CatalogService) DeleteType(id uint, actor ActingUser) error {
	if !actor.IsAdmin() {
		return forbiddenErr("admin only")
	}
	if _, err := s.GetType(id); err != nil {
		return err
	}
	n, err := s.store.Vehicles().CountByTypeID(id)
	if err != nil {
		return unavailableErr(err)
	}
	if n > 0 {
		return conflictErr("type is referenced by %d vehicle(s)", n)
	}
	if err := s.store.Types().Delete(id); err != nil {
		return unavailableErr(err)
	}
	return nil
}
