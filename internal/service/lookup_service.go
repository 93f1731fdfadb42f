package service

import (
	"fmt"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"

	"github.com/google/uuid"
)

// LookupService manages the shared Currency and UnitType references. Deleting
// a row still referenced by price options is rejected outright; retiring a
// row is done by flipping its status to inactive.
type LookupService interface {
	ListCurrencies() ([]model.Currency, error)
	CreateCurrency(identity *model.Identity, req *model.Currency) (*model.Currency, error)
	UpdateCurrency(identity *model.Identity, id uuid.UUID, req *model.Currency) (*model.Currency, error)
	DeleteCurrency(identity *model.Identity, id uuid.UUID) error

	ListUnitTypes() ([]model.UnitType, error)
	CreateUnitType(identity *model.Identity, req *model.UnitType) (*model.UnitType, error)
	UpdateUnitType(identity *model.Identity, id uuid.UUID, req *model.UnitType) (*model.UnitType, error)
	DeleteUnitType(identity *model.Identity, id uuid.UUID) error
}

type lookupService struct {
	currencyRepo repository.CurrencyRepository
	unitRepo     repository.UnitTypeRepository
}

func NewLookupService(cRepo repository.CurrencyRepository, uRepo repository.UnitTypeRepository) LookupService {
	return &lookupService{currencyRepo: cRepo, unitRepo: uRepo}
}

func requireSuperAdmin(identity *model.Identity) error {
	if identity == nil {
		return apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	if identity.Role != model.RoleSuperAdmin {
		return apperr.New(apperr.CodeForbidden, "managing lookups requires superadmin")
	}
	return nil
}

func (s *lookupService) ListCurrencies() ([]model.Currency, error) {
	currencies, err := s.currencyRepo.FindAll()
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return currencies, nil
}

func (s *lookupService) CreateCurrency(identity *model.Identity, req *model.Currency) (*model.Currency, error) {
	if err := requireSuperAdmin(identity); err != nil {
		return nil, err
	}
	if req.Code == "" {
		return nil, apperr.New(apperr.CodeValidation, "currency code is required")
	}
	if req.Status == "" {
		req.Status = model.LookupActive
	}
	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()
	if err := s.currencyRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("currency %q already exists", req.Code))
	}
	return req, nil
}

func (s *lookupService) UpdateCurrency(identity *model.Identity, id uuid.UUID, req *model.Currency) (*model.Currency, error) {
	if err := requireSuperAdmin(identity); err != nil {
		return nil, err
	}
	existing, err := s.currencyRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	if req.Code != "" {
		existing.Code = req.Code
	}
	existing.Symbol = req.Symbol
	if !req.ExchangeRate.IsZero() {
		existing.ExchangeRate = req.ExchangeRate
	}
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.UpdatedBy = identity.UserID.String()
	if err := s.currencyRepo.Update(existing); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("currency %q already exists", existing.Code))
	}
	return existing, nil
}

func (s *lookupService) DeleteCurrency(identity *model.Identity, id uuid.UUID) error {
	if err := requireSuperAdmin(identity); err != nil {
		return err
	}
	if _, err := s.currencyRepo.FindByID(id); err != nil {
		return mapStoreErr(err, "")
	}
	refs, err := s.currencyRepo.CountRefs(id)
	if err != nil {
		return mapStoreErr(err, "")
	}
	if refs > 0 {
		return apperr.New(apperr.CodeConflict,
			fmt.Sprintf("currency is referenced by %d price options; deactivate it instead", refs))
	}
	if err := s.currencyRepo.Delete(id); err != nil {
		return mapStoreErr(err, "")
	}
	return nil
}

func (s *lookupService) ListUnitTypes() ([]model.UnitType, error) {
	units, err := s.unitRepo.FindAll()
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return units, nil
}

func (s *lookupService) CreateUnitType(identity *model.Identity, req *model.UnitType) (*model.UnitType, error) {
	if err := requireSuperAdmin(identity); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, apperr.New(apperr.CodeValidation, "unit type name is required")
	}
	if req.Status == "" {
		req.Status = model.LookupActive
	}
	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()
	if err := s.unitRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("unit type %q already exists", req.Name))
	}
	return req, nil
}

func (s *lookupService) UpdateUnitType(identity *model.Identity, id uuid.UUID, req *model.UnitType) (*model.UnitType, error) {
	if err := requireSuperAdmin(identity); err != nil {
		return nil, err
	}
	existing, err := s.unitRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.UpdatedBy = identity.UserID.String()
	if err := s.unitRepo.Update(existing); err != nil {
		return nil, mapStoreErr(err, "")
	}
	return existing, nil
}

func (s *lookupService) DeleteUnitType(identity *model.Identity, id uuid.UUID) error {
	if err := requireSuperAdmin(identity); err != nil {
		return err
	}
	if _, err := s.unitRepo.FindByID(id); err != nil {
		return mapStoreErr(err, "")
	}
	refs, err := s.unitRepo.CountRefs(id)
	if err != nil {
		return mapStoreErr(err, "")
	}
	if refs > 0 {
		return apperr.New(apperr.CodeConflict,
			fmt.Sprintf("unit type is referenced by %d price options; deactivate it instead", refs))
	}
	if err := s.unitRepo.Delete(id); err != nil {
		return mapStoreErr(err, "")
	}
	return nil
}
