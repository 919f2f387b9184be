package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// first-run admin
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
		Active:    true,
	}
	return db.Create(&admin).Error
}

// SeedDefaults guarantees the settings row and a starter table map exist.
func SeedDefaults() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.RestaurantSetting{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		s := entity.RestaurantSetting{
			Name:               "Meu Restaurante",
			Open:               true,
			DeliveryFee:        800, // R$ 8,00
			ServiceFeePercent:  10,
			LoyaltyEarnRate:    1,
			LoyaltyRedeemValue: 1,
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}

	for n := 1; n <= 8; n++ {
		db.FirstOrCreate(&entity.DiningTable{}, entity.DiningTable{Number: n})
	}

	log.Println("defaults seeded")
	return nil
}
