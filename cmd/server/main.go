package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kappucake/cakeapi/internal/api"
	"github.com/kappucake/cakeapi/internal/capacity"
	"github.com/kappucake/cakeapi/internal/config"
	"github.com/kappucake/cakeapi/internal/ledger"
	"github.com/kappucake/cakeapi/internal/mailer"
	"github.com/kappucake/cakeapi/internal/razorpay"
	"github.com/kappucake/cakeapi/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	gateway := razorpay.NewClient(cfg.Razorpay, logger)

	var reserver capacity.Reserver
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("Failed to open database", zap.Error(err))
		}
		if err := db.Ping(); err != nil {
			logger.Fatal("Failed to ping database", zap.Error(err))
		}
		reserver = capacity.NewPostgresReserver(db, cfg.Capacity.MaxOrdersPerDay, logger)
	} else {
		logger.Warn("DATABASE_URL not set, booking counters will not survive a restart")
		reserver = capacity.NewMemoryReserver(cfg.Capacity.MaxOrdersPerDay)
	}

	var mail mailer.Sender
	if cfg.MailConfigured() {
		mail = mailer.NewSMTPSender(cfg.SMTP, logger)
	} else {
		logger.Warn("SMTP not configured, confirmation emails will be skipped")
	}

	var book ledger.Ledger
	if cfg.LedgerConfigured() {
		sheetsLedger, err := ledger.NewSheetsLedger(context.Background(), cfg.Sheets, logger)
		if err != nil {
			logger.Fatal("Failed to initialize sheets ledger", zap.Error(err))
		}
		book = sheetsLedger
	} else {
		logger.Warn("Sheets ledger not configured, ledger appends will be skipped")
	}

	orders := service.NewOrderService(gateway, reserver, logger)
	confirmer := service.NewConfirmationService(cfg.Razorpay.KeySecret, mail, cfg.SMTP.AdminEmail, book, logger)

	router := api.NewRouter(cfg, orders, confirmer, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	logger.Info("Signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
