package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite per test and seeds the settings
// row pricing reads (fee R$8,00, service fee 10%, 1:1 loyalty).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	err = db.AutoMigrate(
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
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	settings := entity.RestaurantSetting{
		Name:               "Pizzaria Teste",
		Open:               true,
		DeliveryFee:        800,
		ServiceFeePercent:  10,
		LoyaltyEarnRate:    1,
		LoyaltyRedeemValue: 1,
	}
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("seed settings: %v", err)
	}
	return db
}

func newOrderService(db *gorm.DB) *OrderService {
	pricing := NewCouponService(repository.NewCouponRepository(db), repository.NewSettingsRepository(db))
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewCouponRepository(db),
		repository.NewTableRepository(db),
		repository.NewInventoryRepository(db),
		pricing,
	)
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newPricing(db *gorm.DB) *CouponService {
	return NewCouponService(repository.NewCouponRepository(db), repository.NewSettingsRepository(db))
}

func seedItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	cat := entity.Category{Name: "Pizzas"}
	if err := db.FirstOrCreate(&cat, entity.Category{Name: "Pizzas"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	m := entity.MenuItem{Name: name, Price: price, Available: true, CategoryID: cat.ID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return &m
}

func seedVariation(t *testing.T, db *gorm.DB, itemID uint, name, typ string, delta int64, required bool) *entity.ItemVariation {
	t.Helper()
	v := entity.ItemVariation{MenuItemID: itemID, Name: name, Type: typ, PriceAdjustment: delta, Required: required, Available: true}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed variation: %v", err)
	}
	return &v
}

func seedCustomer(t *testing.T, db *gorm.DB, name, phone string, points int) *entity.Customer {
	t.Helper()
	c := entity.Customer{Name: name, Phone: phone, LoyaltyPoints: points}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return &c
}

func seedTable(t *testing.T, db *gorm.DB, number int) *entity.DiningTable {
	t.Helper()
	tb := entity.DiningTable{Number: number, Seats: 4, Status: entity.TableStatusFree}
	if err := db.Create(&tb).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return &tb
}
