package main

import (
	"log"
	"os"

	"go-depo-catalog/internal/model"
	"go-depo-catalog/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Resets the superadmin credentials, creating the account if needed.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 3. Reset existing account, or create it
	var user model.User
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		updates := map[string]interface{}{
			"password":      string(hashedPassword),
			"role":          model.RoleSuperAdmin,
			"is_active":     true,
			"token_version": "", // kick any live session
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			log.Fatalf("❌ Failed to update admin in DB: %v", err)
		}
		log.Printf("✅ Password for %s has been reset", email)
		return
	}

	admin := model.User{
		Email:    email,
		FullName: "Platform Administrator",
		Password: string(hashedPassword),
		Role:     model.RoleSuperAdmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}
	log.Printf("✅ Superadmin %s created", email)
}
