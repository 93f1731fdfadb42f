package service

import (
	"fmt"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/internal/ws"
	"go-depo-catalog/pkg/slugify"
	"go-depo-catalog/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VendorService interface {
	ListVendors() ([]model.Vendor, error)
	GetVendor(id uuid.UUID) (*model.Vendor, error)
	// CreateDepo provisions a vendor on behalf of the platform (superadmin).
	CreateDepo(identity *model.Identity, req *model.Vendor) (*model.Vendor, error)
	// CreateMyStore self-provisions a store for a vendor-role user, at most
	// once per user.
	CreateMyStore(identity *model.Identity, req *model.Vendor) (*model.Vendor, error)
	UpdateVendor(identity *model.Identity, id uuid.UUID, req *model.Vendor) (*model.Vendor, error)
	DeleteVendor(identity *model.Identity, id uuid.UUID) error
}

type vendorService struct {
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
	wsHub      *ws.Hub
	log        *zap.Logger
}

func NewVendorService(vRepo repository.VendorRepository, uRepo repository.UserRepository, hub *ws.Hub, log *zap.Logger) VendorService {
	if log == nil {
		log = zap.NewNop()
	}
	return &vendorService{vendorRepo: vRepo, userRepo: uRepo, wsHub: hub, log: log}
}

func (s *vendorService) ListVendors() ([]model.Vendor, error) {
	vendors, err := s.vendorRepo.FindAll()
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return vendors, nil
}

func (s *vendorService) GetVendor(id uuid.UUID) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return vendor, nil
}

func (s *vendorService) CreateDepo(identity *model.Identity, req *model.Vendor) (*model.Vendor, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	if identity.Role != model.RoleSuperAdmin {
		return nil, apperr.New(apperr.CodeForbidden, "creating a depo requires superadmin")
	}
	return s.create(identity, req, nil)
}

func (s *vendorService) CreateMyStore(identity *model.Identity, req *model.Vendor) (*model.Vendor, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	if identity.Role != model.RoleVendor && identity.Role != model.RoleVendorAdmin {
		return nil, apperr.New(apperr.CodeForbidden, "self-provisioning requires a vendor role")
	}
	if identity.VendorID != nil {
		return nil, apperr.New(apperr.CodeValidation, "store already exists for this account")
	}
	if existing, err := s.vendorRepo.FindByOwner(identity.UserID); err == nil && existing != nil {
		return nil, apperr.New(apperr.CodeValidation, "store already exists for this account")
	}

	vendor, err := s.create(identity, req, &identity.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.LinkVendor(identity.UserID, vendor.ID); err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, err, "failed to link store to account")
	}
	return vendor, nil
}

func (s *vendorService) create(identity *model.Identity, req *model.Vendor, ownerID *uuid.UUID) (*model.Vendor, error) {
	if req.VendorSlug == "" {
		req.VendorSlug = slugify.MakeOrFallback(req.Name)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if req.Status == "" {
		req.Status = model.VendorActive
	}
	req.OwnerUserID = ownerID
	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()

	if err := s.vendorRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("vendor slug %q already exists", req.VendorSlug))
	}
	s.log.Info("vendor created",
		zap.String("vendor_id", req.ID.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "vendor", "created", req.ID.String(), identity.Name)
	return req, nil
}

func (s *vendorService) UpdateVendor(identity *model.Identity, id uuid.UUID, req *model.Vendor) (*model.Vendor, error) {
	if identity == nil {
		return nil, apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	existing, err := s.vendorRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}

	isOwner := existing.OwnerUserID != nil && *existing.OwnerUserID == identity.UserID
	isOwnStore := identity.VendorID != nil && *identity.VendorID == id
	if identity.Role != model.RoleSuperAdmin && !isOwner && !isOwnStore {
		return nil, apperr.New(apperr.CodeForbidden, "only the owner or a superadmin may update this vendor")
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.PhoneNumber = req.PhoneNumber
	existing.Address = req.Address
	if req.VendorSlug != "" {
		existing.VendorSlug = req.VendorSlug
	}
	if req.Status != "" {
		existing.Status = req.Status
	}
	existing.UpdatedBy = identity.UserID.String()
	existing.Products = nil

	if err := s.vendorRepo.Update(existing); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("vendor slug %q already exists", existing.VendorSlug))
	}
	broadcastCatalogEvent(s.wsHub, "vendor", "updated", existing.ID.String(), identity.Name)
	return existing, nil
}

func (s *vendorService) DeleteVendor(identity *model.Identity, id uuid.UUID) error {
	if identity == nil {
		return apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	if identity.Role != model.RoleSuperAdmin {
		return apperr.New(apperr.CodeForbidden, "deleting a vendor requires superadmin")
	}
	if _, err := s.vendorRepo.FindByID(id); err != nil {
		return mapStoreErr(err, "")
	}
	// Cascade keeps the invariant: no product survives its vendor.
	if err := s.vendorRepo.DeleteCascade(id); err != nil {
		return mapStoreErr(err, "")
	}
	s.log.Info("vendor deleted",
		zap.String("vendor_id", id.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "vendor", "deleted", id.String(), identity.Name)
	return nil
}
