package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/yasirSub/backend-mexo/internal/config"
	"github.com/yasirSub/backend-mexo/internal/gateway"
	"github.com/yasirSub/backend-mexo/internal/handler"
	appmw "github.com/yasirSub/backend-mexo/internal/middleware"
	"github.com/yasirSub/backend-mexo/internal/repository"
	"github.com/yasirSub/backend-mexo/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	productRepo := repository.NewProductRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	storeSettingRepo := repository.NewStoreSettingRepository(db)

	gw := gateway.NewStripeGateway(cfg.StripeSecretKey)

	orderSvc := service.NewOrderService(orderRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, orderRepo, gw)
	deliverySvc := service.NewDeliveryService(deliveryRepo, orderRepo)
	productSvc := service.NewProductService(productRepo)
	sellerSvc := service.NewSellerService(sellerRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	storeSettingSvc := service.NewStoreSettingService(storeSettingRepo)

	orderHandler := handler.NewOrderHandler(orderSvc)
	adminOrderHandler := handler.NewAdminOrderHandler(orderSvc)
	paymentHandler := handler.NewPaymentHandler(paymentSvc)
	adminPaymentHandler := handler.NewAdminPaymentHandler(paymentSvc)
	deliveryHandler := handler.NewDeliveryHandler(deliverySvc)
	productHandler := handler.NewProductHandler(productSvc)
	adminProductHandler := handler.NewAdminProductHandler(productSvc)
	adminSellerHandler := handler.NewAdminSellerHandler(sellerSvc, productSvc)
	adminCustomerHandler := handler.NewAdminCustomerHandler(customerSvc)
	categoryHandler := handler.NewCategoryHandler(categorySvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	profileHandler := handler.NewProfileHandler(sellerSvc, storeSettingSvc)

	authMw := appmw.NewAuthMiddleware(cfg.JWTSecret)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":   true,
			"message":   "Mexo Seller API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	v1 := e.Group("/v1", authMw.RequireSeller)
	v1.GET("/categories", categoryHandler.ListActive)
	v1.GET("/orders", orderHandler.List)
	v1.GET("/orders/:id", orderHandler.Get)
	v1.POST("/orders/:id/accept", orderHandler.Accept)
	v1.POST("/orders/:id/reject", orderHandler.Reject)
	v1.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	v1.POST("/orders/:id/deliver", orderHandler.Deliver)
	v1.GET("/notifications", notificationHandler.ListForSeller)
	v1.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	v1.POST("/notifications/read-all", notificationHandler.MarkAllReadForSeller)
	v1.GET("/notifications/unread-count", notificationHandler.UnreadCountForSeller)
	v1.GET("/seller/profile", profileHandler.Get)
	v1.PUT("/seller/profile", profileHandler.Update)
	v1.GET("/seller/store-settings", profileHandler.GetStoreSettings)
	v1.PUT("/seller/store-settings", profileHandler.UpdateStoreSettings)

	seller := e.Group("/seller", authMw.RequireSeller)
	seller.GET("/profile", profileHandler.Get)
	seller.PUT("/profile", profileHandler.Update)
	seller.GET("/store-settings", profileHandler.GetStoreSettings)
	seller.PUT("/store-settings", profileHandler.UpdateStoreSettings)
	seller.GET("/products", productHandler.List)
	seller.POST("/products", productHandler.Create)
	seller.GET("/products/:id", productHandler.Get)
	seller.PUT("/products/:id", productHandler.Update)
	seller.DELETE("/products/:id", productHandler.Delete)
	seller.GET("/orders", orderHandler.List)
	seller.GET("/orders/:id", orderHandler.Get)
	seller.POST("/orders/:id/ship", orderHandler.Ship)
	seller.POST("/orders/:id/deliver", orderHandler.Deliver)
	seller.POST("/payments/create-intent", paymentHandler.CreateIntent)
	seller.GET("/payments/:orderId/status", paymentHandler.GetStatus)
	seller.POST("/webhook/stripe", paymentHandler.Webhook)
	seller.POST("/delivery/orders/:orderId/tracking", deliveryHandler.UpdateTracking)
	seller.GET("/delivery/orders/:orderId/tracking", deliveryHandler.GetTracking)
	seller.GET("/delivery/orders/search", deliveryHandler.SearchOrders)

	admin := e.Group("/admin", authMw.RequireAdmin)
	admin.GET("/sellers", adminSellerHandler.List)
	admin.GET("/sellers/:id", adminSellerHandler.Get)
	admin.GET("/sellers/:id/products", adminSellerHandler.Products)
	admin.PATCH("/sellers/:id/approve", adminSellerHandler.Approve)
	admin.PATCH("/sellers/:id/reject", adminSellerHandler.Reject)
	admin.DELETE("/sellers/:id", adminSellerHandler.Delete)
	admin.GET("/products", adminProductHandler.List)
	admin.GET("/products/:id", adminProductHandler.Get)
	admin.PATCH("/products/:id/approve", adminProductHandler.Approve)
	admin.PATCH("/products/:id/reject", adminProductHandler.Reject)
	admin.PATCH("/products/:id/status", adminProductHandler.UpdateStatus)
	admin.DELETE("/products/:id", adminProductHandler.Delete)
	admin.GET("/orders", adminOrderHandler.List)
	admin.GET("/orders/:id", adminOrderHandler.Get)
	admin.PATCH("/orders/:id/status", adminOrderHandler.UpdateStatus)
	admin.GET("/categories", categoryHandler.List)
	admin.POST("/categories", categoryHandler.Create)
	admin.GET("/categories/:id", categoryHandler.Get)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.GET("/payments", adminPaymentHandler.List)
	admin.GET("/payments/:id", adminPaymentHandler.Get)
	admin.PATCH("/payments/:id/status", adminPaymentHandler.UpdateStatus)
	admin.PATCH("/payments/:id/mark-paid", adminPaymentHandler.MarkPaid)
	admin.GET("/customers", adminCustomerHandler.List)
	admin.GET("/customers/:id", adminCustomerHandler.Get)
	admin.PATCH("/customers/:id/toggle-status", adminCustomerHandler.ToggleStatus)
	admin.GET("/notifications", notificationHandler.ListForAdmin)
	admin.GET("/notifications/unread-count", notificationHandler.UnreadCountForAdmin)
	admin.POST("/notifications/create-test", notificationHandler.CreateTest)
	admin.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
	admin.POST("/notifications/read-all", notificationHandler.MarkAllReadForAdmin)
	admin.DELETE("/notifications/:id", notificationHandler.Delete)
	admin.DELETE("/notifications/read/all", notificationHandler.DeleteAllRead)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
