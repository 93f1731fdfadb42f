package model

import "github.com/google/uuid"

// VendorStatus is the lifecycle state of a vendor storefront.
type VendorStatus string

const (
	VendorActive   VendorStatus = "active"
	VendorInactive VendorStatus = "inactive"
)

// Vendor is an independent seller tenant ("depo") owning Products.
type Vendor struct {
	BaseModel
	Name        string       `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	VendorSlug  string       `gorm:"type:varchar(255);uniqueIndex;not null" json:"vendor_slug" validate:"required"`
	Email       string       `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string       `gorm:"type:varchar(20)" json:"phone_number"`
	Address     string       `gorm:"type:text" json:"address"`
	Status      VendorStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// At most one user owns a vendor (self-provisioned stores).
	OwnerUserID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"owner_user_id,omitempty"`

	Products []Product `gorm:"foreignKey:VendorID" json:"products,omitempty"`
}
