package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recreio/config"
	"recreio/cron"
	"recreio/database"
	"recreio/database/repository"
	"recreio/handlers"
	"recreio/middleware"
	"recreio/routes"
	"recreio/services/checkout"
	"recreio/services/consumption"
	"recreio/services/coupons"
	"recreio/services/drawer"
	"recreio/services/notices"
	"recreio/services/products"
	"recreio/services/sessions"
	"recreio/services/tasks"
	"recreio/services/venue"
	"recreio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitTaskQueue()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	sessionRepo := repository.NewMongoSessionRepo()
	productRepo := repository.NewMongoProductRepo()
	couponRepo := repository.NewMongoCouponRepo()
	saleRepo := repository.NewMongoSaleRepo()
	cashRepo := repository.NewMongoCashSessionRepo()
	settingsRepo := repository.NewMongoSettingsRepo()
	noticeRepo := repository.NewMongoNoticeRepo()
	checkoutRepo := repository.NewMongoCheckoutRepo()

	// Deferred work goes through the task queue.
	scheduler := &tasks.QueueScheduler{Client: utils.GetTaskClient()}

	// Services.
	couponService := &coupons.DefaultCouponService{Repo: couponRepo}

	sessionService := &sessions.DefaultSessionService{
		Repo:     sessionRepo,
		Coupons:  couponService,
		Settings: settingsRepo,
		Reminder: scheduler,
	}

	ledger := &consumption.DefaultLedger{
		Sessions: sessionRepo,
		Products: productRepo,
		Notifier: scheduler,
	}

	drawerService := &drawer.DefaultDrawerService{
		Repo:  cashRepo,
		Sales: saleRepo,
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Sessions: sessionRepo,
		Coupons:  couponService,
		Settings: settingsRepo,
		Drawer:   drawerService,
		Repo:     checkoutRepo,
	}

	productService := &products.DefaultProductService{Repo: productRepo}
	noticeService := &notices.DefaultNoticeService{Repo: noticeRepo}

	venueService := &venue.DefaultVenueService{
		Repo:  settingsRepo,
		Cache: utils.GetCacheClient(),
	}
	if storageService, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: logo uploads disabled: %v", err)
	} else {
		venueService.Storage = storageService
	}

	// Background worker for overtime reminders and low-stock notices.
	cron.InitTaskWorker(sessionRepo, noticeService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:        &handlers.AuthHandler{},
		Sessions:    &handlers.SessionHandler{Service: sessionService},
		Consumption: &handlers.ConsumptionHandler{Ledger: ledger},
		Checkout:    &handlers.CheckoutHandler{Service: checkoutService},
		Products:    &handlers.ProductHandler{Service: productService},
		Coupons:     &handlers.CouponHandler{Service: couponService},
		Drawer:      &handlers.DrawerHandler{Service: drawerService},
		Venue:       &handlers.VenueHandler{Service: venueService},
		Notices:     &handlers.NoticeHandler{Service: noticeService},
		Reports:     &handlers.ReportsHandler{Sales: saleRepo},
	}

	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
