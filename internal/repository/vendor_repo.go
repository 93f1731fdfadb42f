package repository

import (
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendorRepository interface {
	Create(vendor *model.Vendor) error
	FindAll() ([]model.Vendor, error)
	FindByID(id uuid.UUID) (*model.Vendor, error)
	FindBySlug(slug string) (*model.Vendor, error)
	FindByOwner(userID uuid.UUID) (*model.Vendor, error)
	// FallbackVendor is the named policy for superadmin writes without a
	// vendor association: first vendor by creation time.
	FallbackVendor() (*model.Vendor, error)
	Update(vendor *model.Vendor) error
	// DeleteCascade removes the vendor, its products and their price options
	// in one transaction so no orphaned rows survive.
	DeleteCascade(id uuid.UUID) error
}

type vendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) VendorRepository {
	return &vendorRepo{db}
}

func (r *vendorRepo) Create(vendor *model.Vendor) error {
	return r.db.Create(vendor).Error
}

func (r *vendorRepo) FindAll() ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.Order("created_at ASC").Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepo) FindByID(id uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) FindBySlug(slug string) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.First(&vendor, "vendor_slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) FindByOwner(userID uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.First(&vendor, "owner_user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) FallbackVendor() (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.Order("created_at ASC").First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepo) Update(vendor *model.Vendor) error {
	return r.db.Save(vendor).Error
}

func (r *vendorRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var productIDs []uuid.UUID
		if err := tx.Model(&model.Product{}).Where("vendor_id = ?", id).Pluck("id", &productIDs).Error; err != nil {
			return err
		}
		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&model.ProductPriceOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("vendor_id = ?", id).Delete(&model.Product{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Vendor{}, "id = ?", id).Error
	})
}
