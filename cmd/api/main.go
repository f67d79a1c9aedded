// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/bankaccount"
	"github.com/expense-tracker/backend/internal/application/usecase/debt"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/income"
	"github.com/expense-tracker/backend/internal/application/usecase/jar"
	"github.com/expense-tracker/backend/internal/application/usecase/session"
	"github.com/expense-tracker/backend/internal/application/usecase/summary"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/internal/integration/persistence/blob"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.ExpenseModel{},
		&model.DebtModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis connection for the blob collections
	kvStore, err := kv.NewRedisConnection(&cfg.Redis)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := kvStore.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	debtRepo := persistence.NewDebtRepository(database.DB())

	blobStore := blob.NewStore(kvStore.Client())
	jarRepo := blob.NewJarRepository(blobStore)
	incomeRepo := blob.NewIncomeRepository(blobStore)
	accountRepo := blob.NewBankAccountRepository(blobStore)

	// Create adapters/services
	accessKeyService := adapters.NewAccessKeyService()
	tokenService := adapters.NewTokenService(cfg.Session.JWTSecret, cfg.Session.TokenExpiry)

	accessKeyHash := cfg.Session.AccessKeyHash
	if accessKeyHash == "" {
		// Development fallback: hash a plain key supplied via ACCESS_KEY.
		plainKey := os.Getenv("ACCESS_KEY")
		if plainKey == "" {
			slog.Error("Neither ACCESS_KEY_HASH nor ACCESS_KEY is configured")
			os.Exit(1)
		}
		accessKeyHash, err = accessKeyService.HashAccessKey(plainKey)
		if err != nil {
			slog.Error("Failed to hash access key", "error", err)
			os.Exit(1)
		}
		slog.Warn("Using plain ACCESS_KEY from environment; set ACCESS_KEY_HASH in production")
	}

	// Create use cases
	createSessionUseCase := session.NewCreateSessionUseCase(accessKeyHash, accessKeyService, tokenService)

	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
	applyPaymentUseCase := debt.NewApplyPaymentUseCase(debtRepo)
	getPortfolioUseCase := debt.NewGetPortfolioUseCase(debtRepo)

	listJarsUseCase := jar.NewListJarsUseCase(jarRepo)
	replaceJarsUseCase := jar.NewReplaceJarsUseCase(jarRepo)
	applyPresetUseCase := jar.NewApplyDefaultPresetUseCase(jarRepo)
	getAllocationUseCase := jar.NewGetAllocationUseCase(jarRepo, incomeRepo)

	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	replaceIncomesUseCase := income.NewReplaceIncomesUseCase(incomeRepo)

	listAccountsUseCase := bankaccount.NewListAccountsUseCase(accountRepo)
	replaceAccountsUseCase := bankaccount.NewReplaceAccountsUseCase(accountRepo)

	getMonthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(expenseRepo)
	getBreakdownUseCase := summary.NewGetCategoryBreakdownUseCase(expenseRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck, kvStore.HealthCheck)
	sessionController := controller.NewSessionController(createSessionUseCase)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)
	debtController := controller.NewDebtController(
		listDebtsUseCase,
		createDebtUseCase,
		updateDebtUseCase,
		deleteDebtUseCase,
		applyPaymentUseCase,
		getPortfolioUseCase,
	)
	jarController := controller.NewJarController(
		listJarsUseCase,
		replaceJarsUseCase,
		applyPresetUseCase,
		getAllocationUseCase,
	)
	incomeController := controller.NewIncomeController(listIncomesUseCase, replaceIncomesUseCase)
	bankAccountController := controller.NewBankAccountController(listAccountsUseCase, replaceAccountsUseCase)
	summaryController := controller.NewSummaryController(getMonthlySummaryUseCase, getBreakdownUseCase)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(
		healthController,
		sessionController,
		expenseController,
		debtController,
		jarController,
		incomeController,
		bankAccountController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
