package configs

import (
	"log"

	"backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens sqlite for dev or postgres for hosted deployments.
func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{TranslateError: true})
	}
	if err != nil {
		log.Fatalf("failed to connect database (%s): %v", cfg.DBDriver, err)
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.UserPermission{},
		&entity.Category{}, &entity.MenuItem{}, &entity.ItemVariation{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemVariation{},
		&entity.Customer{}, &entity.LoyaltyTransaction{},
		&entity.Coupon{},
		&entity.DiningTable{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CashMovement{},
		&entity.Supplier{}, &entity.InventoryItem{},
		&entity.Motoboy{}, &entity.Expense{},
		&entity.RestaurantSetting{},
	)
}
