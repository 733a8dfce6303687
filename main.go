package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonora/config"
	"salonora/cron"
	"salonora/database"
	bookingRepoPkg "salonora/database/repository/booking"
	catalogRepoPkg "salonora/database/repository/catalog"
	couponRepoPkg "salonora/database/repository/coupon"
	inventoryRepoPkg "salonora/database/repository/inventory"
	invoiceRepoPkg "salonora/database/repository/invoice"
	loyaltyRepoPkg "salonora/database/repository/loyalty"
	notificationRepoPkg "salonora/database/repository/notification"
	salonRepoPkg "salonora/database/repository/salon"
	staffRepoPkg "salonora/database/repository/staff"
	userRepoPkg "salonora/database/repository/user"
	"salonora/handlers"
	"salonora/middleware"
	"salonora/routes"
	"salonora/services/billing"
	"salonora/services/booking"
	"salonora/services/catalog"
	"salonora/services/coupon"
	"salonora/services/inventory"
	"salonora/services/loyalty"
	"salonora/services/notification"
	"salonora/services/staffops"
	"salonora/services/tasks"
	"salonora/services/user"
	"salonora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	salonRepo := salonRepoPkg.NewMongoSalonRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	couponRepo := couponRepoPkg.NewMongoCouponRepo()
	loyaltyRepo := loyaltyRepoPkg.NewMongoLoyaltyRepo()
	inventoryRepo := inventoryRepoPkg.NewMongoInventoryRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Bookings: bookingRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}

	couponService := &coupon.DefaultCouponService{Repo: couponRepo}
	loyaltyService := &loyalty.DefaultLoyaltyService{Repo: loyaltyRepo}
	catalogService := &catalog.DefaultCatalogService{
		Salons:  salonRepo,
		Catalog: catalogRepo,
	}
	inventoryService := &inventory.DefaultInventoryService{Repo: inventoryRepo}
	attendanceService := &staffops.DefaultAttendanceService{Repo: staffRepo}

	billingService := &billing.DefaultBillingService{
		Invoices:  invoiceRepo,
		Bookings:  bookingRepo,
		Catalog:   catalogRepo,
		Inventory: inventoryRepo,
		Staff:     staffRepo,
		Cache:     utils.GetCacheClient(),
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	draftTTL := time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute
	bookingService := &booking.DefaultBookingService{
		Drafts:    booking.NewRedisDraftStore(utils.GetDraftCacheClient(), draftTTL),
		Catalog:   catalogRepo,
		Bookings:  bookingRepo,
		Staff:     staffRepo,
		Coupons:   couponService,
		Loyalty:   loyaltyService,
		Invoices:  billingService,
		Notify:    notificationService,
		Reminders: &tasks.AsynqScheduler{Client: asynqClient},
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Booking:      &handlers.BookingHandler{Service: bookingService},
		Catalog:      &handlers.CatalogHandler{Service: catalogService},
		Coupon:       &handlers.CouponHandler{Service: couponService},
		Loyalty:      &handlers.LoyaltyHandler{Service: loyaltyService},
		Inventory:    &handlers.InventoryHandler{Service: inventoryService},
		Billing:      &handlers.BillingHandler{Service: billingService},
		Attendance:   &handlers.AttendanceHandler{Service: attendanceService},
		Notification: &handlers.NotificationHandler{Service: notificationService},
		User:         &handlers.UserHandler{Service: userService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	cron.StartStatsRefresher(workerCtx, salonRepo, billingService, 30*time.Second)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetDraftCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopWorkers()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
