package repository

import (
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubCategoryRepository interface {
	Create(sub *model.SubCategory) error
	FindAll() ([]model.SubCategory, error)
	FindByID(id uuid.UUID) (*model.SubCategory, error)
	FindByCategory(categoryID uuid.UUID) ([]model.SubCategory, error)
	Update(sub *model.SubCategory) error
	// DeleteCascade removes the subcategory and clears product links to it in
	// one transaction.
	DeleteCascade(id uuid.UUID) error
}

type subCategoryRepo struct {
	db *gorm.DB
}

func NewSubCategoryRepo(db *gorm.DB) SubCategoryRepository {
	return &subCategoryRepo{db}
}

func (r *subCategoryRepo) Create(sub *model.SubCategory) error {
	return r.db.Create(sub).Error
}

func (r *subCategoryRepo) FindAll() ([]model.SubCategory, error) {
	var subs []model.SubCategory
	err := r.db.Preload("Category").Order("created_at ASC").Find(&subs).Error
	return subs, err
}

func (r *subCategoryRepo) FindByID(id uuid.UUID) (*model.SubCategory, error) {
	var sub model.SubCategory
	if err := r.db.First(&sub, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subCategoryRepo) FindByCategory(categoryID uuid.UUID) ([]model.SubCategory, error) {
	var subs []model.SubCategory
	err := r.db.Where("category_id = ?", categoryID).Find(&subs).Error
	return subs, err
}

func (r *subCategoryRepo) Update(sub *model.SubCategory) error {
	return r.db.Save(sub).Error
}

func (r *subCategoryRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).Where("sub_category_id = ?", id).
			Update("sub_category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SubCategory{}, "id = ?", id).Error
	})
}
