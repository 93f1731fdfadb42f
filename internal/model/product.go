package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus controls storefront visibility.
type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
)

// Gallery stores the ordered list of gallery image URLs as a jsonb column.
type Gallery []string

func (g Gallery) Value() (driver.Value, error) {
	return json.Marshal(g)
}

func (g *Gallery) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, g)
}

// Product is a catalog listing owned by exactly one Vendor.
type Product struct {
	BaseModel
	NameKm      string `gorm:"type:varchar(255);not null" json:"name_km" validate:"required"`
	NameEn      string `gorm:"type:varchar(255)" json:"name_en"`
	NameZh      string `gorm:"type:varchar(255)" json:"name_zh"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required"`
	Description string `gorm:"type:text" json:"description"`

	// Required on create; nullable at the store level so a category delete can
	// degrade the link to "none" instead of leaving it dangling.
	CategoryID    *uuid.UUID   `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category      *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategoryID *uuid.UUID   `gorm:"type:uuid;index" json:"sub_category_id,omitempty"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`

	// Ownership: immutable for non-superadmin actors.
	VendorID uuid.UUID `gorm:"type:uuid;not null;index" json:"vendor_id"`
	Vendor   *Vendor   `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`

	// StockQty is meaningful only when UnlimitedStock is false.
	StockQty       int             `gorm:"default:0" json:"stock_qty"`
	UnlimitedStock bool            `gorm:"default:false" json:"unlimited_stock"`
	DiscountPct    decimal.Decimal `gorm:"type:decimal(5,2);default:0.00" json:"discount_pct"`

	MainImage string  `gorm:"type:text" json:"main_image"`
	Gallery   Gallery `gorm:"type:jsonb" json:"gallery"`

	Status ProductStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`

	PriceOptions []ProductPriceOption `gorm:"foreignKey:ProductID" json:"price_options,omitempty"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updated_by_id,omitempty"`
}

// ProductPriceOption is one (unit, currency, price) combination of a Product.
// A product keeps at least one option at all times after creation.
type ProductPriceOption struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	UnitTypeID uuid.UUID `gorm:"type:uuid;not null" json:"unit_type_id" validate:"uuid_required"`
	UnitType   *UnitType `gorm:"foreignKey:UnitTypeID" json:"unit_type,omitempty"`
	CurrencyID uuid.UUID `gorm:"type:uuid;not null" json:"currency_id" validate:"uuid_required"`
	Currency   *Currency `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`

	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	UnitLabel   string          `gorm:"type:varchar(50)" json:"unit_label"`
	MinOrderQty int             `gorm:"default:1" json:"min_order_qty"`
	MaxOrderQty int             `gorm:"default:999" json:"max_order_qty"`
}
