package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/creator-wallet/internal/alerts"
	"github.com/a2sh3r/creator-wallet/internal/config"
	"github.com/a2sh3r/creator-wallet/internal/database"
	"github.com/a2sh3r/creator-wallet/internal/handlers"
	"github.com/a2sh3r/creator-wallet/internal/logger"
	"github.com/a2sh3r/creator-wallet/internal/notification"
	"github.com/a2sh3r/creator-wallet/internal/repository"
	"github.com/a2sh3r/creator-wallet/internal/service"
	"github.com/a2sh3r/creator-wallet/internal/storage"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	proofs, err := storage.NewProofStorage(cfg.ProofStoragePath, cfg.MaxUploadMB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize proof storage: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	detector := alerts.NewDetector(alerts.Config{
		HighAmount:          cfg.HighAmount(),
		MaxMonthly:          cfg.AlertMaxMonthly,
		FrequencyWindowDays: cfg.AlertFrequencyWindowDays,
		MinDaysBetween:      cfg.AlertMinDaysBetween,
		NewAccountDays:      cfg.AlertNewAccountDays,
	}, withdrawalRepo, bankAccountRepo, alertRepo)

	sender := notification.NewSendgridSender(notification.SendgridConfig{
		APIKey:   cfg.SendgridAPIKey,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
	})

	userService := service.NewUserService(userRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, bankAccountRepo, userRepo, detector, sender, cfg.PendingWithdrawalCap)
	bankAccountService := service.NewBankAccountService(bankAccountRepo)
	alertService := service.NewAlertService(alertRepo, withdrawalRepo)

	handler := handlers.NewHandler(userService, withdrawalService, bankAccountService, alertService, proofs, cfg.SecretKey)

	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
