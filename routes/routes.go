package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.KitchenHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	tableRepo := repository.NewTableRepository(db)
	cashRepo := repository.NewCashRepository(db)
	invRepo := repository.NewInventoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	pricingSvc := services.NewCouponService(couponRepo, settingsRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, menuRepo, customerRepo, couponRepo, tableRepo, invRepo, pricingSvc)
	orderSvc.Events = hub
	receiptSvc := services.NewReceiptService(orderRepo, settingsRepo)
	reportSvc := services.NewReportService(reportRepo, cashRepo)
	expenseSvc := services.NewExpenseService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	adminCtrl := controllers.NewAdminController(db, authSvc, userRepo)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, pricingSvc, receiptSvc, customerRepo)
	kitchenCtrl := controllers.NewKitchenController(orderRepo)
	couponCtrl := controllers.NewCouponController(db, couponRepo, pricingSvc)
	customerCtrl := controllers.NewCustomerController(db, customerRepo)
	tableCtrl := controllers.NewTableController(db, tableRepo, orderRepo)
	cashCtrl := controllers.NewCashController(db, cashRepo)
	invCtrl := controllers.NewInventoryController(db, invRepo)
	supplierCtrl := controllers.NewSupplierController(db)
	motoboyCtrl := controllers.NewMotoboyController(db)
	expenseCtrl := controllers.NewExpenseController(db, expenseSvc)
	settingsCtrl := controllers.NewSettingsController(settingsRepo)
	reportCtrl := controllers.NewReportController(reportSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public customer menu: browse + self-service checkout, no login.
	r.GET("/menu/categories", menuCtrl.Categories)
	r.GET("/menu/items", menuCtrl.Items)
	r.GET("/menu/items/:id", menuCtrl.ItemDetail)
	r.POST("/public/quote", orderCtrl.Quote)
	r.POST("/public/orders", orderCtrl.Create)

	// PDV (any logged-in staff)
	pdv := r.Group("/", middlewares.AuthMiddleware())
	{
		pdv.GET("/cart", cartCtrl.Get)
		pdv.POST("/cart/items", cartCtrl.Add)
		pdv.PATCH("/cart/items/:itemId", cartCtrl.UpdateQty)
		pdv.DELETE("/cart/items/:itemId", cartCtrl.RemoveItem)
		pdv.DELETE("/cart", cartCtrl.Clear)

		pdv.POST("/orders", orderCtrl.Create)
		pdv.POST("/orders/quote", orderCtrl.Quote)
		pdv.GET("/orders", orderCtrl.List)
		pdv.GET("/orders/:id", orderCtrl.Detail)
		pdv.POST("/orders/:id/items", orderCtrl.AppendItems)
		pdv.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		pdv.GET("/orders/:id/receipt", orderCtrl.Receipt)

		pdv.GET("/coupons/validate", couponCtrl.Validate)

		pdv.GET("/tables", tableCtrl.List)
		pdv.GET("/tables/:id/orders", tableCtrl.Orders)
		pdv.PATCH("/tables/:id/status", tableCtrl.SetStatus)

		pdv.GET("/customers", customerCtrl.List)
		pdv.GET("/customers/:id", customerCtrl.Detail)
	}

	// KDS
	kitchen := r.Group("/kitchen", middlewares.AuthMiddleware("kitchen", "manager", "cashier", "waiter"))
	{
		kitchen.GET("/queue", kitchenCtrl.Queue)
	}
	r.GET("/ws/kitchen", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	// Back office (manager/admin)
	office := r.Group("/office", middlewares.AuthMiddleware("manager"))
	{
		office.POST("/menu/categories", menuCtrl.CreateCategory)
		office.PATCH("/menu/categories/:id", menuCtrl.UpdateCategory)
		office.POST("/menu/items", menuCtrl.CreateItem)
		office.PATCH("/menu/items/:id", menuCtrl.UpdateItem)
		office.DELETE("/menu/items/:id", menuCtrl.DeleteItem)
		office.POST("/menu/items/:id/variations", menuCtrl.CreateVariation)
		office.PATCH("/menu/variations/:vid", menuCtrl.UpdateVariation)
		office.DELETE("/menu/variations/:vid", menuCtrl.DeleteVariation)

		office.GET("/coupons", couponCtrl.List)
		office.POST("/coupons", couponCtrl.Create)
		office.PATCH("/coupons/:id", couponCtrl.Update)
		office.DELETE("/coupons/:id", couponCtrl.Delete)

		office.PATCH("/customers/:id", customerCtrl.Update)

		office.POST("/tables", tableCtrl.Create)
		office.DELETE("/tables/:id", tableCtrl.Delete)

		office.GET("/cash", cashCtrl.List)
		office.POST("/cash", cashCtrl.Create)

		office.GET("/inventory", invCtrl.List)
		office.POST("/inventory", invCtrl.Create)
		office.PATCH("/inventory/:id", invCtrl.Update)
		office.POST("/inventory/:id/restock", invCtrl.Restock)
		office.DELETE("/inventory/:id", invCtrl.Delete)

		office.GET("/suppliers", supplierCtrl.List)
		office.POST("/suppliers", supplierCtrl.Create)
		office.PATCH("/suppliers/:id", supplierCtrl.Update)
		office.DELETE("/suppliers/:id", supplierCtrl.Delete)

		office.GET("/motoboys", motoboyCtrl.List)
		office.POST("/motoboys", motoboyCtrl.Create)
		office.PATCH("/motoboys/:id", motoboyCtrl.Update)
		office.DELETE("/motoboys/:id", motoboyCtrl.Delete)

		office.GET("/expenses", expenseCtrl.List)
		office.POST("/expenses", expenseCtrl.Create)

		office.GET("/settings", settingsCtrl.Get)
		office.PATCH("/settings", settingsCtrl.Update)

		office.GET("/reports/daily", reportCtrl.Daily)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/users", adminCtrl.Users)
		admin.POST("/users", adminCtrl.CreateUser)
		admin.PATCH("/users/:id", adminCtrl.UpdateUser)
		admin.GET("/users/:id/permissions", adminCtrl.Permissions)
		admin.POST("/users/:id/permissions", adminCtrl.Grant)
		admin.DELETE("/users/:id/permissions", adminCtrl.Revoke)
	}
}
