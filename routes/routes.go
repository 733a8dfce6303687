package routes

import (
	"net/http"
	"time"

	"salonora/handlers"
	"salonora/middleware"
	"salonora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.User.LogoutHandler)
	}

	me := r.Group("/api/me")
	{
		me.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		me.GET("", hb.User.GetProfileHandler)
		me.PUT("", hb.User.UpdateProfileHandler)
		me.PUT("/fcm-token", hb.User.SetFCMTokenHandler)
		me.GET("/bookings", hb.User.BookingHistoryHandler)
	}
}

// RegisterCatalogRoutes registers public browsing endpoints plus the
// owner-only catalog management endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		api.GET("", hb.Catalog.ListSalonsHandler)
		api.GET("/:id", hb.Catalog.GetSalonHandler)
		api.GET("/:id/services", hb.Catalog.ListServicesHandler)
		api.GET("/:id/products", hb.Catalog.ListProductsHandler)
		api.GET("/:id/schedule", hb.Booking.DayScheduleHandler)
		api.GET("/:id/specialists", hb.Booking.AvailableSpecialistsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireOwner())
		protected.POST("/:id/services", hb.Catalog.CreateServiceHandler)
		protected.POST("/:id/products", hb.Catalog.CreateProductHandler)
	}

	owner := r.Group("/api")
	{
		owner.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireOwner())
		owner.PUT("/services/:id", hb.Catalog.UpdateServiceHandler)
		owner.DELETE("/services/:id", hb.Catalog.DeleteServiceHandler)
		owner.PUT("/products/:id", hb.Catalog.UpdateProductHandler)
		owner.DELETE("/products/:id", hb.Catalog.DeleteProductHandler)
	}
}

// RegisterBookingRoutes sets up the booking wizard. Drafts support guest
// checkout, so authentication is optional.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.OptionalAuthMiddleware(hb.UserRepo))
		api.POST("/drafts", hb.Booking.StartDraftHandler)
		api.GET("/drafts/:id", hb.Booking.GetDraftHandler)
		api.DELETE("/drafts/:id", hb.Booking.CancelDraftHandler)
		api.PUT("/drafts/:id/services", hb.Booking.ToggleServiceHandler)
		api.PUT("/drafts/:id/type", hb.Booking.SetBookingTypeHandler)
		api.PUT("/drafts/:id/staff", hb.Booking.ChooseStaffHandler)
		api.PUT("/drafts/:id/slot", hb.Booking.ChooseSlotHandler)
		api.PUT("/drafts/:id/guest", hb.Booking.GuestDetailsHandler)
		api.PUT("/drafts/:id/redeem", hb.Booking.RedeemPointsHandler)
		api.POST("/drafts/:id/coupon", hb.Booking.ApplyCouponHandler)
		api.GET("/drafts/:id/quote", hb.Booking.QuoteHandler)
		api.POST("/drafts/:id/submit", hb.Booking.SubmitHandler)
		api.GET("/groups/:groupID/invoice", hb.Billing.InvoiceForGroupHandler)
	}
}

// RegisterLoyaltyRoutes registers loyalty balance and program endpoints.
func RegisterLoyaltyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons/:id/loyalty")
	{
		api.GET("/program", hb.Loyalty.GetProgramHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/balance", hb.Loyalty.BalanceHandler)
		api.PUT("/program", middleware.RequireOwner(), hb.Loyalty.SetProgramHandler)
	}
}

// RegisterSalonOpsRoutes registers the staff-facing operational endpoints:
// coupons, inventory, attendance, invoices, reports and the dashboard.
func RegisterSalonOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	salon := r.Group("/api/salons/:id")
	salon.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireSalonStaff())
	{
		salon.GET("/coupons", hb.Coupon.ListCouponsHandler)
		salon.POST("/coupons", middleware.RequireOwner(), hb.Coupon.CreateCouponHandler)

		salon.GET("/inventory", hb.Inventory.ListItemsHandler)
		salon.GET("/inventory/summary", hb.Inventory.SummaryHandler)
		salon.POST("/inventory", hb.Inventory.CreateItemHandler)

		salon.GET("/staff", hb.Attendance.ListStaffHandler)
		salon.POST("/staff", middleware.RequireOwner(), hb.Attendance.CreateStaffHandler)
		salon.GET("/attendance", hb.Attendance.TodayHandler)

		salon.GET("/invoices", hb.Billing.ListInvoicesHandler)
		salon.GET("/reports/revenue", middleware.RequireOwner(), hb.Billing.RevenueReportHandler)
		salon.GET("/dashboard", hb.Billing.DashboardStatsHandler)
	}

	ops := r.Group("/api")
	ops.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireSalonStaff())
	{
		ops.PUT("/coupons/:id", middleware.RequireOwner(), hb.Coupon.UpdateCouponHandler)
		ops.DELETE("/coupons/:id", middleware.RequireOwner(), hb.Coupon.DeleteCouponHandler)

		ops.PUT("/inventory/:id", hb.Inventory.UpdateItemHandler)
		ops.DELETE("/inventory/:id", hb.Inventory.DeleteItemHandler)
		ops.POST("/inventory/:id/adjust", hb.Inventory.AdjustItemHandler)

		ops.POST("/staff/:id/clock-in", hb.Attendance.ClockInHandler)
		ops.POST("/staff/:id/clock-out", hb.Attendance.ClockOutHandler)
		ops.PUT("/staff/:id", middleware.RequireOwner(), hb.Attendance.UpdateStaffHandler)
		ops.DELETE("/staff/:id", middleware.RequireOwner(), hb.Attendance.DeleteStaffHandler)

		ops.GET("/invoices/:id", hb.Billing.GetInvoiceHandler)
		ops.POST("/invoices/:id/pay", hb.Billing.CreatePaymentIntentHandler)
		ops.POST("/invoices/:id/mark-paid", hb.Billing.MarkPaidHandler)
	}
}

// RegisterNotificationRoutes registers the in-app notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Notification.ListHandler)
		api.POST("/:id/read", hb.Notification.MarkReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
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
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterLoyaltyRoutes(r, hb)
	RegisterSalonOpsRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
