package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "librental-backend/internal/api/http"
	"librental-backend/internal/config"
	"librental-backend/internal/logger"
	"librental-backend/internal/repository/postgres"
	"librental-backend/internal/security"
	"librental-backend/internal/service"
	"librental-backend/internal/stripe"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Payment Provider Client
	checkoutClient := stripe.NewClient(
		cfg.Stripe.APIKey,
		cfg.Stripe.BaseURL,
		time.Duration(cfg.Stripe.TimeoutSeconds)*time.Second,
	)

	// Initialize Email + Notifications
	emailSvc := service.NewSendGridEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)
	notifier := service.NewNotifier(store.UserRepository, store.NotificationRepository, emailSvc)

	// Initialize Services
	bookSvc := service.NewBookService(store.BookRepository)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.BorrowingRepository,
		store.BookRepository,
		checkoutClient,
		notifier,
		cfg.Stripe.CallbackBaseURL,
		cfg.Billing.FineMultiplierPercent,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)
	borrowingSvc := service.NewBorrowingService(
		store.BorrowingRepository,
		store.BookRepository,
		store.InventoryRepository,
		paymentSvc,
		notifier,
	)

	// Initialize HTTP handlers
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)
	bookHandler := httpapi.NewBookHandler(bookSvc)
	borrowingHandler := httpapi.NewBorrowingHandler(borrowingSvc)
	paymentHandler := httpapi.NewPaymentHandler(paymentSvc)
	notificationHandler := httpapi.NewNotificationHandler(notificationSvc)

	router := httpapi.NewRouter(authMiddleware, bookHandler, borrowingHandler, paymentHandler, notificationHandler)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
