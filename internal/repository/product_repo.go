package repository

import (
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	// FindAllScoped returns products limited to one vendor, or all vendors
	// when vendorID is nil.
	FindAllScoped(vendorID *uuid.UUID) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	// FindRelated returns up to limit other published products of the same
	// vendor, newest first.
	FindRelated(vendorID uuid.UUID, excludeID uuid.UUID, limit int) ([]model.Product, error)
	SlugExists(slug string) (bool, error)
	// CreateWithOptions persists the product and its price options in one
	// transaction; a failing option row rolls back the whole create.
	CreateWithOptions(product *model.Product, options []model.ProductPriceOption) error
	// UpdateWithOptions saves the product and replaces its entire price
	// option set (delete-all then insert) in one transaction.
	UpdateWithOptions(product *model.Product, options []model.ProductPriceOption) error
	// DeleteCascade removes price options then the product, atomically.
	DeleteCascade(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PriceOptions").
		Preload("PriceOptions.UnitType").
		Preload("PriceOptions.Currency").
		Preload("Category").
		Preload("SubCategory").
		Preload("Vendor")
}

func (r *productRepo) FindAllScoped(vendorID *uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	q := r.preload(r.db).Order("created_at DESC")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.preload(r.db).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindRelated(vendorID uuid.UUID, excludeID uuid.UUID, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.
		Preload("PriceOptions").
		Where("vendor_id = ? AND id <> ? AND status = ?", vendorID, excludeID, model.ProductPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *productRepo) CreateWithOptions(product *model.Product, options []model.ProductPriceOption) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].ProductID = product.ID
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		product.PriceOptions = options
		return nil
	})
}

func (r *productRepo) UpdateWithOptions(product *model.Product, options []model.ProductPriceOption) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		// Full replace: existing option ids are meaningless to the caller.
		if err := tx.Unscoped().Where("product_id = ?", product.ID).
			Delete(&model.ProductPriceOption{}).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].ID = uuid.Nil
			options[i].ProductID = product.ID
		}
		if err := tx.Create(&options).Error; err != nil {
			return err
		}
		product.PriceOptions = options
		return nil
	})
}

func (r *productRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductPriceOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}
