package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"flowermarket-backend/entity"
)

// SeedVendor creates a first vendor account from VENDOR_EMAIL/VENDOR_PASSWORD.
// Skips silently when the envs are absent or the account already exists.
func SeedVendor() error {
	email := getEnv("VENDOR_EMAIL", "")
	pass := getEnv("VENDOR_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding vendor: missing VENDOR_EMAIL/VENDOR_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("vendor already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	vendor := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: getEnv("VENDOR_NAME", "Vendor"),
		Role:     "vendor",
	}
	if err := db.Create(&vendor).Error; err != nil {
		return err
	}
	log.Println("seeded vendor:", email)
	return nil
}
