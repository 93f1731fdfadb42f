package model

import "github.com/shopspring/decimal"

// LookupStatus marks a shared reference row usable (active) or retired.
type LookupStatus string

const (
	LookupActive   LookupStatus = "active"
	LookupInactive LookupStatus = "inactive"
)

// UnitType is a global unit-of-sale reference (kg, bag, box, ...). Shared
// across vendors; price options reference it weakly.
type UnitType struct {
	BaseModel
	Name   string       `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Status LookupStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
}

// Currency is a global currency reference with an exchange rate to the base
// currency. Shared across vendors, never owned by one.
type Currency struct {
	BaseModel
	Code         string          `gorm:"type:varchar(10);uniqueIndex;not null" json:"code" validate:"required"`
	Symbol       string          `gorm:"type:varchar(10)" json:"symbol"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(16,6);default:1.000000" json:"exchange_rate"`
	Status       LookupStatus    `gorm:"type:varchar(20);default:'active'" json:"status"`
}
