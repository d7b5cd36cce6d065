package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"database/sql"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/config"
	"github.com/skillforge/journey-service/internal/handler"
	"github.com/skillforge/journey-service/internal/repository"
	"github.com/skillforge/journey-service/internal/service"
	"github.com/skillforge/journey-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.RunMigrations(context.Background()); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenManager([]byte(cfg.JWTSecret), cfg.TokenTTL, repo)

	var mailer service.Mailer
	if sender := email.NewSender(cfg, logger); sender.Enabled() {
		mailer = sender
	}

	svc := service.NewService(repo, tokens, mailer, logger, cfg.BcryptCost)
	h := handler.NewHandler(svc)

	// Background reaper for revoked tokens past their natural expiry
	reaper := cron.New()
	if _, err := reaper.AddFunc(cfg.ReaperSchedule, func() {
		if err := svc.ReapRevokedTokens(context.Background(), cfg.TokenTTL); err != nil {
			logger.Errorf("Revoked token reaper failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule reaper: %v", err)
	}
	reaper.Start()
	defer reaper.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Routes(h, tokens),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}
}
