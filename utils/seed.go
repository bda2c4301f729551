package utils

import (
	"log"

	"gorm.io/gorm"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/models"
)

// SeedAdmin bootstraps the first admin account from ADMIN_PHONE /
// ADMIN_PASSWORD. Skipped when either is unset or an admin already exists.
func SeedAdmin(db *gorm.DB) {
	if config.C.AdminPhone == "" || config.C.AdminPassword == "" {
		return
	}

	var existing models.User
	if err := db.Where("role = ?", models.RoleAdmin).First(&existing).Error; err == nil {
		return
	}

	hashed, err := HashPassword(config.C.AdminPassword)
	if err != nil {
		log.Printf("admin seed: hashing failed: %v", err)
		return
	}

	admin := models.User{
		Name:        "Administrator",
		PhoneNumber: config.C.AdminPhone,
		Password:    hashed,
		Role:        models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("admin seed: %v", err)
		return
	}
	log.Printf("admin seed: created admin user %d", admin.ID)
}
