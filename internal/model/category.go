package model

import "github.com/google/uuid"

// Category is the first level of the global product taxonomy. Categories are
// not vendor-scoped; only superadmin and vendor_admin actors manage them.
type Category struct {
	BaseModel
	NameEn    string `gorm:"type:varchar(255);not null" json:"name_en" validate:"required"`
	NameKm    string `gorm:"type:varchar(255);not null" json:"name_km" validate:"required"`
	NameZh    string `gorm:"type:varchar(255);not null" json:"name_zh" validate:"required"`
	Slug      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	ImageURL  string `gorm:"type:text" json:"image_url"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"sub_categories,omitempty"`
}

// SubCategory is the second taxonomy level. Its lifecycle is tied to the
// parent Category: deleting the parent cascades here.
type SubCategory struct {
	BaseModel
	NameEn   string `gorm:"type:varchar(255)" json:"name_en"`
	NameKm   string `gorm:"type:varchar(255)" json:"name_km"`
	NameZh   string `gorm:"type:varchar(255)" json:"name_zh"`
	Slug     string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	ImageURL string `gorm:"type:text" json:"image_url"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id" validate:"uuid_required"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
