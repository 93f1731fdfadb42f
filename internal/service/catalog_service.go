package service

import (
	"context"
	"fmt"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/internal/ws"
	"go-depo-catalog/pkg/imagestore"
	"go-depo-catalog/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const relatedProductLimit = 4

// ProductDetail is a product expanded with its related listings: up to four
// other published products of the same vendor, newest first.
type ProductDetail struct {
	Product *model.Product  `json:"product"`
	Related []model.Product `json:"related"`
}

type CatalogService interface {
	ListProducts(identity *model.Identity, requestedVendorID *uuid.UUID) ([]model.Product, error)
	ListPublished(vendorID *uuid.UUID) ([]model.Product, error)
	GetProduct(id uuid.UUID) (*ProductDetail, error)
	CreateProduct(identity *model.Identity, req *model.Product) (*model.Product, error)
	UpdateProduct(identity *model.Identity, id uuid.UUID, req *model.Product) (*model.Product, error)
	DeleteProduct(identity *model.Identity, id uuid.UUID) error
}

type catalogService struct {
	productRepo     repository.ProductRepository
	vendorRepo      repository.VendorRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	prices          *PriceOptionManager
	slugs           *SlugRegistry
	images          *imagestore.Store
	wsHub           *ws.Hub
	log             *zap.Logger
}

func NewCatalogService(
	pRepo repository.ProductRepository,
	vRepo repository.VendorRepository,
	cRepo repository.CategoryRepository,
	scRepo repository.SubCategoryRepository,
	prices *PriceOptionManager,
	slugs *SlugRegistry,
	images *imagestore.Store,
	hub *ws.Hub,
	log *zap.Logger,
) CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &catalogService{
		productRepo:     pRepo,
		vendorRepo:      vRepo,
		categoryRepo:    cRepo,
		subCategoryRepo: scRepo,
		prices:          prices,
		slugs:           slugs,
		images:          images,
		wsHub:           hub,
		log:             log,
	}
}

func (s *catalogService) ListProducts(identity *model.Identity, requestedVendorID *uuid.UUID) ([]model.Product, error) {
	scope, err := ResolveScope(identity, requestedVendorID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAllScoped(scope.VendorID)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return products, nil
}

// ListPublished is the public storefront read: published products only,
// optionally limited to one vendor. No identity required.
func (s *catalogService) ListPublished(vendorID *uuid.UUID) ([]model.Product, error) {
	products, err := s.productRepo.FindAllScoped(vendorID)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	published := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Status == model.ProductPublished {
			published = append(published, p)
		}
	}
	return published, nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*ProductDetail, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	related, err := s.productRepo.FindRelated(product.VendorID, product.ID, relatedProductLimit)
	if err != nil {
		// Related listings are decoration; the product itself is the answer.
		s.log.Warn("related products lookup failed", zap.Error(err))
		related = nil
	}
	return &ProductDetail{Product: product, Related: related}, nil
}

func (s *catalogService) CreateProduct(identity *model.Identity, req *model.Product) (*model.Product, error) {
	if _, err := ResolveScope(identity, nil); err != nil {
		return nil, err
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if err := s.checkTaxonomy(req.CategoryID, req.SubCategoryID); err != nil {
		return nil, err
	}
	if err := s.checkStockAndDiscount(req); err != nil {
		return nil, err
	}

	available, err := s.slugs.IsAvailable(req.Slug)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("slug %q already exists", req.Slug))
	}

	vendorID, err := s.resolveWriteVendor(identity, req.VendorID)
	if err != nil {
		return nil, err
	}
	req.VendorID = vendorID

	options, err := s.prices.Normalize(req.PriceOptions)
	if err != nil {
		return nil, err
	}
	req.PriceOptions = nil

	s.localizeImages(req)

	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()
	req.CreatedByID = &identity.UserID
	req.UpdatedByID = &identity.UserID

	if err := s.productRepo.CreateWithOptions(req, options); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("slug %q already exists", req.Slug))
	}

	s.log.Info("product created",
		zap.String("product_id", req.ID.String()),
		zap.String("vendor_id", vendorID.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "product", "created", req.ID.String(), identity.Name)
	return req, nil
}

func (s *catalogService) UpdateProduct(identity *model.Identity, id uuid.UUID, req *model.Product) (*model.Product, error) {
	scope, err := ResolveScope(identity, nil)
	if err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	// Ownership is re-checked against the stored row, never the payload.
	if err := CheckOwnership(scope, existing.VendorID); err != nil {
		return nil, err
	}

	if req.NameKm == "" {
		return nil, apperr.New(apperr.CodeValidation, "khmer name is required")
	}
	if req.Slug != "" && req.Slug != existing.Slug {
		available, err := s.slugs.IsAvailable(req.Slug)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("slug %q already exists", req.Slug))
		}
		existing.Slug = req.Slug
	}

	categoryID := existing.CategoryID
	if req.CategoryID != nil {
		categoryID = req.CategoryID
	}
	if err := s.checkTaxonomy(categoryID, req.SubCategoryID); err != nil {
		return nil, err
	}
	if err := s.checkStockAndDiscount(req); err != nil {
		return nil, err
	}

	options, err := s.prices.Normalize(req.PriceOptions)
	if err != nil {
		return nil, err
	}

	s.localizeImages(req)

	existing.NameKm = req.NameKm
	existing.NameEn = req.NameEn
	existing.NameZh = req.NameZh
	existing.Description = req.Description
	existing.CategoryID = categoryID
	existing.SubCategoryID = req.SubCategoryID
	existing.StockQty = req.StockQty
	existing.UnlimitedStock = req.UnlimitedStock
	existing.DiscountPct = req.DiscountPct
	existing.MainImage = req.MainImage
	existing.Gallery = req.Gallery
	existing.Status = req.Status
	existing.UpdatedBy = identity.UserID.String()
	existing.UpdatedByID = &identity.UserID

	// Vendor ownership is immutable for non-superadmin actors even when the
	// payload carries a different vendor id.
	if identity.Role == model.RoleSuperAdmin && req.VendorID != uuid.Nil && req.VendorID != existing.VendorID {
		if _, err := s.vendorRepo.FindByID(req.VendorID); err != nil {
			return nil, apperr.New(apperr.CodeValidation, "target vendor does not exist")
		}
		existing.VendorID = req.VendorID
	}

	// Clear stale preloads so the save writes columns, not associations.
	existing.Category = nil
	existing.SubCategory = nil
	existing.Vendor = nil
	existing.PriceOptions = nil

	if err := s.productRepo.UpdateWithOptions(existing, options); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("slug %q already exists", existing.Slug))
	}

	s.log.Info("product updated",
		zap.String("product_id", existing.ID.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "product", "updated", existing.ID.String(), identity.Name)
	return existing, nil
}

func (s *catalogService) DeleteProduct(identity *model.Identity, id uuid.UUID) error {
	scope, err := ResolveScope(identity, nil)
	if err != nil {
		return err
	}
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return mapStoreErr(err, "")
	}
	if err := CheckOwnership(scope, existing.VendorID); err != nil {
		return err
	}
	if err := s.productRepo.DeleteCascade(id); err != nil {
		return mapStoreErr(err, "")
	}

	s.log.Info("product deleted",
		zap.String("product_id", id.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "product", "deleted", id.String(), identity.Name)
	return nil
}

// resolveWriteVendor decides which vendor a create lands under: the payload
// vendor for superadmins, the actor's own vendor otherwise, or the named
// first-vendor fallback when a superadmin has no store of their own.
func (s *catalogService) resolveWriteVendor(identity *model.Identity, payloadVendorID uuid.UUID) (uuid.UUID, error) {
	if identity.Role == model.RoleSuperAdmin {
		if payloadVendorID != uuid.Nil {
			if _, err := s.vendorRepo.FindByID(payloadVendorID); err != nil {
				return uuid.Nil, apperr.New(apperr.CodeValidation, "target vendor does not exist")
			}
			return payloadVendorID, nil
		}
		if identity.VendorID != nil {
			return *identity.VendorID, nil
		}
		fallback, err := s.vendorRepo.FallbackVendor()
		if err != nil {
			return uuid.Nil, apperr.New(apperr.CodeValidation, "no vendor available")
		}
		return fallback.ID, nil
	}

	if identity.VendorID == nil {
		return uuid.Nil, apperr.New(apperr.CodeForbidden, "no vendor linked to this account")
	}
	if payloadVendorID != uuid.Nil && payloadVendorID != *identity.VendorID {
		return uuid.Nil, apperr.New(apperr.CodeForbidden, "cannot create products for another vendor")
	}
	return *identity.VendorID, nil
}

// checkTaxonomy validates the category reference and, when a subcategory is
// set, that its parent is the product's category. Validated, not assumed.
func (s *catalogService) checkTaxonomy(categoryID *uuid.UUID, subCategoryID *uuid.UUID) error {
	if categoryID == nil || *categoryID == uuid.Nil {
		return apperr.New(apperr.CodeValidation, "category is required")
	}
	if _, err := s.categoryRepo.FindByID(*categoryID); err != nil {
		return apperr.New(apperr.CodeValidation, "category does not exist")
	}
	if subCategoryID != nil && *subCategoryID != uuid.Nil {
		sub, err := s.subCategoryRepo.FindByID(*subCategoryID)
		if err != nil {
			return apperr.New(apperr.CodeValidation, "subcategory does not exist")
		}
		if sub.CategoryID != *categoryID {
			return apperr.New(apperr.CodeValidation, "subcategory does not belong to the selected category")
		}
	}
	return nil
}

func (s *catalogService) checkStockAndDiscount(req *model.Product) error {
	if req.UnlimitedStock && req.StockQty != 0 {
		return apperr.New(apperr.CodeValidation, "unlimited stock and stock quantity are mutually exclusive")
	}
	if req.StockQty < 0 {
		return apperr.New(apperr.CodeValidation, "stock quantity must not be negative")
	}
	if req.DiscountPct.LessThan(decimal.Zero) || req.DiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return apperr.New(apperr.CodeValidation, "discount must be between 0 and 100")
	}
	return nil
}

// localizeImages re-hosts external image URLs best effort. A failed localize
// keeps the original URL; the write proceeds either way.
func (s *catalogService) localizeImages(req *model.Product) {
	ctx := context.Background()
	if req.MainImage != "" {
		req.MainImage = s.images.Localize(ctx, req.MainImage)
	}
	for i, url := range req.Gallery {
		req.Gallery[i] = s.images.Localize(ctx, url)
	}
}
