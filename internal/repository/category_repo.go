package repository

import (
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	// DeleteCascade removes the category and its subcategories and degrades
	// product links (category and transitive subcategory references) to none,
	// all in one transaction.
	DeleteCascade(id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Preload("SubCategories").Order("sort_order ASC, created_at ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.Preload("SubCategories").First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var subIDs []uuid.UUID
		if err := tx.Model(&model.SubCategory{}).Where("category_id = ?", id).Pluck("id", &subIDs).Error; err != nil {
			return err
		}
		if len(subIDs) > 0 {
			if err := tx.Model(&model.Product{}).Where("sub_category_id IN ?", subIDs).
				Update("sub_category_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&model.SubCategory{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&model.Product{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, "id = ?", id).Error
	})
}
