package repository

import (
	"go-depo-catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CurrencyRepository interface {
	Create(currency *model.Currency) error
	FindAll() ([]model.Currency, error)
	FindByID(id uuid.UUID) (*model.Currency, error)
	Update(currency *model.Currency) error
	Delete(id uuid.UUID) error
	// CountRefs counts price options referencing the currency.
	CountRefs(id uuid.UUID) (int64, error)
}

type UnitTypeRepository interface {
	Create(unit *model.UnitType) error
	FindAll() ([]model.UnitType, error)
	FindByID(id uuid.UUID) (*model.UnitType, error)
	Update(unit *model.UnitType) error
	Delete(id uuid.UUID) error
	CountRefs(id uuid.UUID) (int64, error)
}

type currencyRepo struct {
	db *gorm.DB
}

func NewCurrencyRepo(db *gorm.DB) CurrencyRepository {
	return &currencyRepo{db}
}

func (r *currencyRepo) Create(currency *model.Currency) error {
	return r.db.Create(currency).Error
}

func (r *currencyRepo) FindAll() ([]model.Currency, error) {
	var currencies []model.Currency
	err := r.db.Order("code ASC").Find(&currencies).Error
	return currencies, err
}

func (r *currencyRepo) FindByID(id uuid.UUID) (*model.Currency, error) {
	var currency model.Currency
	if err := r.db.First(&currency, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}

func (r *currencyRepo) Update(currency *model.Currency) error {
	return r.db.Save(currency).Error
}

func (r *currencyRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Currency{}, "id = ?", id).Error
}

func (r *currencyRepo) CountRefs(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductPriceOption{}).Where("currency_id = ?", id).Count(&count).Error
	return count, err
}

type unitTypeRepo struct {
	db *gorm.DB
}

func NewUnitTypeRepo(db *gorm.DB) UnitTypeRepository {
	return &unitTypeRepo{db}
}

func (r *unitTypeRepo) Create(unit *model.UnitType) error {
	return r.db.Create(unit).Error
}

func (r *unitTypeRepo) FindAll() ([]model.UnitType, error) {
	var units []model.UnitType
	err := r.db.Order("name ASC").Find(&units).Error
	return units, err
}

func (r *unitTypeRepo) FindByID(id uuid.UUID) (*model.UnitType, error) {
	var unit model.UnitType
	if err := r.db.First(&unit, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitTypeRepo) Update(unit *model.UnitType) error {
	return r.db.Save(unit).Error
}

func (r *unitTypeRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.UnitType{}, "id = ?", id).Error
}

func (r *unitTypeRepo) CountRefs(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.ProductPriceOption{}).Where("unit_type_id = ?", id).Count(&count).Error
	return count, err
}
