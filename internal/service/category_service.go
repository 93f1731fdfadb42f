package service

import (
	"context"
	"fmt"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"
	"go-depo-catalog/internal/ws"
	"go-depo-catalog/pkg/imagestore"
	"go-depo-catalog/pkg/slugify"
	"go-depo-catalog/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CategoryService owns the category hierarchy lifecycle. Categories are
// global taxonomy: only superadmin and vendor_admin actors manage them, and
// deletes never leave a product pointing at a missing row.
type CategoryService interface {
	ListCategories() ([]model.Category, error)
	GetCategory(id uuid.UUID) (*model.Category, error)
	CreateCategory(identity *model.Identity, req *model.Category) (*model.Category, error)
	UpdateCategory(identity *model.Identity, id uuid.UUID, req *model.Category) (*model.Category, error)
	DeleteCategory(identity *model.Identity, id uuid.UUID) error

	ListSubCategories(categoryID *uuid.UUID) ([]model.SubCategory, error)
	CreateSubCategory(identity *model.Identity, req *model.SubCategory) (*model.SubCategory, error)
	UpdateSubCategory(identity *model.Identity, id uuid.UUID, req *model.SubCategory) (*model.SubCategory, error)
	DeleteSubCategory(identity *model.Identity, id uuid.UUID) error
}

type categoryService struct {
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	images          *imagestore.Store
	wsHub           *ws.Hub
	log             *zap.Logger
}

func NewCategoryService(
	cRepo repository.CategoryRepository,
	scRepo repository.SubCategoryRepository,
	images *imagestore.Store,
	hub *ws.Hub,
	log *zap.Logger,
) CategoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &categoryService{
		categoryRepo:    cRepo,
		subCategoryRepo: scRepo,
		images:          images,
		wsHub:           hub,
		log:             log,
	}
}

func requireTaxonomyRole(identity *model.Identity) error {
	if identity == nil {
		return apperr.New(apperr.CodeUnauthorized, "authentication required")
	}
	if !identity.Role.CanManageTaxonomy() {
		return apperr.New(apperr.CodeForbidden, "taxonomy management requires superadmin or vendor_admin")
	}
	return nil
}

func (s *categoryService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return categories, nil
}

func (s *categoryService) GetCategory(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return category, nil
}

func (s *categoryService) CreateCategory(identity *model.Identity, req *model.Category) (*model.Category, error) {
	if err := requireTaxonomyRole(identity); err != nil {
		return nil, err
	}
	if req.Slug == "" {
		req.Slug = slugify.MakeOrFallback(req.NameEn)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if req.ImageURL != "" {
		req.ImageURL = s.images.Localize(context.Background(), req.ImageURL)
	}
	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()

	if err := s.categoryRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("category slug %q already exists", req.Slug))
	}
	broadcastCatalogEvent(s.wsHub, "category", "created", req.ID.String(), identity.Name)
	return req, nil
}

func (s *categoryService) UpdateCategory(identity *model.Identity, id uuid.UUID, req *model.Category) (*model.Category, error) {
	if err := requireTaxonomyRole(identity); err != nil {
		return nil, err
	}
	existing, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}

	existing.NameEn = req.NameEn
	existing.NameKm = req.NameKm
	existing.NameZh = req.NameZh
	existing.SortOrder = req.SortOrder
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	if req.ImageURL != "" {
		existing.ImageURL = s.images.Localize(context.Background(), req.ImageURL)
	}
	existing.UpdatedBy = identity.UserID.String()
	existing.SubCategories = nil

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.New(apperr.CodeValidation,
			fmt.Sprintf("field '%s' failed on '%s'", first.FailedField, first.Tag))
	}
	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("category slug %q already exists", existing.Slug))
	}
	broadcastCatalogEvent(s.wsHub, "category", "updated", existing.ID.String(), identity.Name)
	return existing, nil
}

func (s *categoryService) DeleteCategory(identity *model.Identity, id uuid.UUID) error {
	if err := requireTaxonomyRole(identity); err != nil {
		return err
	}
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return mapStoreErr(err, "")
	}
	if err := s.categoryRepo.DeleteCascade(id); err != nil {
		return mapStoreErr(err, "")
	}
	s.log.Info("category deleted",
		zap.String("category_id", id.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "category", "deleted", id.String(), identity.Name)
	return nil
}

func (s *categoryService) ListSubCategories(categoryID *uuid.UUID) ([]model.SubCategory, error) {
	var (
		subs []model.SubCategory
		err  error
	)
	if categoryID != nil {
		subs, err = s.subCategoryRepo.FindByCategory(*categoryID)
	} else {
		subs, err = s.subCategoryRepo.FindAll()
	}
	if err != nil {
		return nil, mapStoreErr(err, "")
	}
	return subs, nil
}

func (s *categoryService) CreateSubCategory(identity *model.Identity, req *model.SubCategory) (*model.SubCategory, error) {
	if err := requireTaxonomyRole(identity); err != nil {
		return nil, err
	}
	if req.CategoryID == uuid.Nil {
		return nil, apperr.New(apperr.CodeValidation, "parent category is required")
	}
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, apperr.New(apperr.CodeValidation, "parent category does not exist")
	}
	if req.Slug == "" {
		req.Slug = slugify.MakeOrFallback(req.NameEn)
	}
	if req.ImageURL != "" {
		req.ImageURL = s.images.Localize(context.Background(), req.ImageURL)
	}
	req.CreatedBy = identity.UserID.String()
	req.UpdatedBy = identity.UserID.String()

	if err := s.subCategoryRepo.Create(req); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("subcategory slug %q already exists", req.Slug))
	}
	broadcastCatalogEvent(s.wsHub, "subcategory", "created", req.ID.String(), identity.Name)
	return req, nil
}

func (s *categoryService) UpdateSubCategory(identity *model.Identity, id uuid.UUID, req *model.SubCategory) (*model.SubCategory, error) {
	if err := requireTaxonomyRole(identity); err != nil {
		return nil, err
	}
	existing, err := s.subCategoryRepo.FindByID(id)
	if err != nil {
		return nil, mapStoreErr(err, "")
	}

	existing.NameEn = req.NameEn
	existing.NameKm = req.NameKm
	existing.NameZh = req.NameZh
	if req.Slug != "" {
		existing.Slug = req.Slug
	}
	if req.ImageURL != "" {
		existing.ImageURL = s.images.Localize(context.Background(), req.ImageURL)
	}
	// The parent link is immutable in the common path; re-parenting is a
	// delete-and-recreate.
	existing.UpdatedBy = identity.UserID.String()
	existing.Category = nil

	if err := s.subCategoryRepo.Update(existing); err != nil {
		return nil, mapStoreErr(err, fmt.Sprintf("subcategory slug %q already exists", existing.Slug))
	}
	broadcastCatalogEvent(s.wsHub, "subcategory", "updated", existing.ID.String(), identity.Name)
	return existing, nil
}

func (s *categoryService) DeleteSubCategory(identity *model.Identity, id uuid.UUID) error {
	if err := requireTaxonomyRole(identity); err != nil {
		return err
	}
	if _, err := s.subCategoryRepo.FindByID(id); err != nil {
		return mapStoreErr(err, "")
	}
	if err := s.subCategoryRepo.DeleteCascade(id); err != nil {
		return mapStoreErr(err, "")
	}
	s.log.Info("subcategory deleted",
		zap.String("subcategory_id", id.String()),
		zap.String("actor", identity.UserID.String()))
	broadcastCatalogEvent(s.wsHub, "subcategory", "deleted", id.String(), identity.Name)
	return nil
}
