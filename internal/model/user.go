package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents an authenticated actor in the system
type User struct {
	BaseModel
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password    string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName    string     `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number"`
	Role        Role       `gorm:"type:varchar(20);not null;default:'customer'" json:"role"`
	VendorID    *uuid.UUID `gorm:"type:uuid;index" json:"vendor_id,omitempty"` // Vendor affiliation (vendor roles)
	Vendor      *Vendor    `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string    `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Identity is the per-request actor context extracted from the JWT.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Name     string
	Role     Role
	VendorID *uuid.UUID
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	PhoneNumber string     `json:"phone_number"`
	Role        Role       `json:"role"`
	VendorID    *uuid.UUID `json:"vendor_id,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		VendorID:    u.VendorID,
		IsActive:    u.IsActive,
	}
}
