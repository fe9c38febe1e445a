package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"librental-backend/internal/config"
	"librental-backend/internal/jobs"
	"librental-backend/internal/logger"
	"librental-backend/internal/repository/postgres"
	"librental-backend/internal/scheduler"
	"librental-backend/internal/service"
	"librental-backend/internal/stripe"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'notify-overdue-borrowings', 'expire-stale-sessions', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Rental Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	checkoutClient := stripe.NewClient(
		cfg.Stripe.APIKey,
		cfg.Stripe.BaseURL,
		time.Duration(cfg.Stripe.TimeoutSeconds)*time.Second,
	)
	emailService := service.NewSendGridEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)
	notifier := service.NewNotifier(store.UserRepository, store.NotificationRepository, emailService)

	paymentService := service.NewPaymentService(
		store.PaymentRepository,
		store.BorrowingRepository,
		store.BookRepository,
		checkoutClient,
		notifier,
		cfg.Stripe.CallbackBaseURL,
		cfg.Billing.FineMultiplierPercent,
	)
	borrowingService := service.NewBorrowingService(
		store.BorrowingRepository,
		store.BookRepository,
		store.InventoryRepository,
		paymentService,
		notifier,
	)

	jobServices := &jobs.Services{
		Borrowing: borrowingService,
		Payment:   paymentService,
		Notifier:  notifier,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "notify-overdue-borrowings":
		jobRunner.NotifyOverdueBorrowings()
	case "expire-stale-sessions":
		jobRunner.ExpireStaleSessions()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - notify-overdue-borrowings\n")
		fmt.Printf("  - expire-stale-sessions\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
