package service

import (
	"fmt"

	"go-depo-catalog/internal/apperr"
	"go-depo-catalog/internal/model"
	"go-depo-catalog/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultMinOrderQty = 1
	defaultMaxOrderQty = 999
)

// PriceOptionManager owns the replace-all-prices protocol: it validates and
// normalizes a full replacement set before the repository applies it
// atomically. The set is replaced, never merged, so submitted option ids are
// advisory only and get discarded here.
type PriceOptionManager struct {
	currencyRepo repository.CurrencyRepository
	unitRepo     repository.UnitTypeRepository
}

func NewPriceOptionManager(cRepo repository.CurrencyRepository, uRepo repository.UnitTypeRepository) *PriceOptionManager {
	return &PriceOptionManager{currencyRepo: cRepo, unitRepo: uRepo}
}

// Normalize validates the replacement set and returns it with defaults
// applied. An empty set is rejected outright: every product keeps at least
// one price option after any create or update.
func (m *PriceOptionManager) Normalize(options []model.ProductPriceOption) ([]model.ProductPriceOption, error) {
	if len(options) == 0 {
		return nil, apperr.New(apperr.CodeValidation, "at least one price option is required")
	}

	normalized := make([]model.ProductPriceOption, len(options))
	for i, opt := range options {
		if opt.CurrencyID == uuid.Nil {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: currency is required", i+1))
		}
		currency, err := m.currencyRepo.FindByID(opt.CurrencyID)
		if err != nil {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: unknown currency", i+1))
		}
		if currency.Status != model.LookupActive {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: currency %s is inactive", i+1, currency.Code))
		}

		if opt.UnitTypeID == uuid.Nil {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: unit type is required", i+1))
		}
		unit, err := m.unitRepo.FindByID(opt.UnitTypeID)
		if err != nil {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: unknown unit type", i+1))
		}
		if unit.Status != model.LookupActive {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: unit type %s is inactive", i+1, unit.Name))
		}

		if opt.Price.LessThan(decimal.Zero) {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: price must not be negative", i+1))
		}

		if opt.MinOrderQty == 0 {
			opt.MinOrderQty = defaultMinOrderQty
		}
		if opt.MaxOrderQty == 0 {
			opt.MaxOrderQty = defaultMaxOrderQty
		}
		if opt.MinOrderQty < 1 {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: min order quantity must be at least 1", i+1))
		}
		if opt.MaxOrderQty < opt.MinOrderQty {
			return nil, apperr.New(apperr.CodeValidation, fmt.Sprintf("price option %d: max order quantity below min", i+1))
		}

		// Drop any client-supplied identity; the stored set is brand new.
		opt.ID = uuid.Nil
		opt.UnitType = nil
		opt.Currency = nil
		normalized[i] = opt
	}
	return normalized, nil
}
