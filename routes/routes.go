package routes

import (
	"net/http"
	"time"

	"recreio/handlers"
	"recreio/middleware"
	"recreio/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers active-session and consumption endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.POST("", hb.Sessions.CheckInHandler)
		api.GET("", hb.Sessions.ListHandler)
		api.GET("/watch", hb.Sessions.WatchHandler)
		api.GET("/:id", hb.Sessions.GetHandler)
		api.GET("/:id/quote", hb.Sessions.QuoteHandler)
		api.PUT("/:id/time", hb.Sessions.AddTimeHandler)
		api.DELETE("/:id/cancel", hb.Sessions.CancelHandler)
		api.DELETE("/:id", hb.Sessions.DeleteHandler)

		// Consumption tab.
		api.POST("/:id/consumption/:productId", hb.Consumption.IncrementHandler)
		api.PUT("/:id/consumption/:productId/decrement", hb.Consumption.DecrementHandler)
		api.DELETE("/:id/consumption/:productId", hb.Consumption.RemoveHandler)
	}
}

// RegisterCheckoutRoutes registers settlement endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("/:id/quote", hb.Checkout.QuoteHandler)
		api.POST("/:id", hb.Checkout.SettleHandler)
	}
}

// RegisterProductRoutes registers catalogue endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/products")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("", hb.Products.ListHandler)
		api.GET("/:id", hb.Products.GetHandler)
		api.POST("", hb.Products.CreateHandler)
		api.PUT("/:id", hb.Products.UpdateHandler)
		api.PUT("/:id/stock", hb.Products.RestockHandler)
		api.DELETE("/:id", hb.Products.DeleteHandler)
	}
}

// RegisterCouponRoutes registers coupon endpoints.
func RegisterCouponRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coupons")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("", hb.Coupons.ListHandler)
		api.GET("/validate/:code", hb.Coupons.ValidateHandler)
		api.POST("", hb.Coupons.CreateHandler)
		api.PUT("/:id", hb.Coupons.UpdateHandler)
		api.DELETE("/:id", hb.Coupons.DeleteHandler)
	}
}

// RegisterDrawerRoutes registers cash-drawer endpoints.
func RegisterDrawerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/drawer")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.POST("/open", hb.Drawer.OpenHandler)
		api.GET("/current", hb.Drawer.CurrentHandler)
		api.GET("/sales", hb.Drawer.SalesHandler)
		api.POST("/withdrawals", hb.Drawer.WithdrawHandler)
		api.POST("/close", hb.Drawer.CloseHandler)
	}
}

// RegisterVenueRoutes registers settings and branding endpoints.
func RegisterVenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("", hb.Venue.GetSettingsHandler)
		api.PUT("", hb.Venue.UpdateSettingsHandler)
		api.POST("/logo", hb.Venue.UploadLogoHandler)
	}
}

// RegisterNoticeRoutes registers operator alert endpoints.
func RegisterNoticeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notices")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("", hb.Notices.ListHandler)
		api.DELETE("/:id", hb.Notices.DismissHandler)
		api.DELETE("", hb.Notices.DismissAllHandler)
	}
}

// RegisterReportRoutes registers read-only sale-record endpoints.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reports")
	{
		api.Use(middleware.OperatorAuthMiddleware())
		api.GET("/sales", hb.Reports.ListSalesHandler)
		api.GET("/sales/:id", hb.Reports.GetSaleHandler)
	}
}

// RegisterAuthRoutes registers the operator login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterCouponRoutes(r, hb)
	RegisterDrawerRoutes(r, hb)
	RegisterVenueRoutes(r, hb)
	RegisterNoticeRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r)
}
