package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
	accountStore "github.com/MrJamesThe3rd/homeledger/internal/account/store"
	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
	accounttxStore "github.com/MrJamesThe3rd/homeledger/internal/accounttx/store"
	"github.com/MrJamesThe3rd/homeledger/internal/auth"
	authStore "github.com/MrJamesThe3rd/homeledger/internal/auth/store"
	"github.com/MrJamesThe3rd/homeledger/internal/budget"
	budgetStore "github.com/MrJamesThe3rd/homeledger/internal/budget/store"
	"github.com/MrJamesThe3rd/homeledger/internal/category"
	categoryStore "github.com/MrJamesThe3rd/homeledger/internal/category/store"
	"github.com/MrJamesThe3rd/homeledger/internal/config"
	"github.com/MrJamesThe3rd/homeledger/internal/dashboard"
	dashboardStore "github.com/MrJamesThe3rd/homeledger/internal/dashboard/store"
	"github.com/MrJamesThe3rd/homeledger/internal/database"
	"github.com/MrJamesThe3rd/homeledger/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/homeledger/internal/expense/store"
	ledgerHttp "github.com/MrJamesThe3rd/homeledger/internal/http"
	accountHandler "github.com/MrJamesThe3rd/homeledger/internal/http/account"
	accounttxHandler "github.com/MrJamesThe3rd/homeledger/internal/http/accounttx"
	authHandler "github.com/MrJamesThe3rd/homeledger/internal/http/auth"
	budgetHandler "github.com/MrJamesThe3rd/homeledger/internal/http/budget"
	categoryHandler "github.com/MrJamesThe3rd/homeledger/internal/http/category"
	dashboardHandler "github.com/MrJamesThe3rd/homeledger/internal/http/dashboard"
	expenseHandler "github.com/MrJamesThe3rd/homeledger/internal/http/expense"
	milkHandler "github.com/MrJamesThe3rd/homeledger/internal/http/milk"
	reportHandler "github.com/MrJamesThe3rd/homeledger/internal/http/report"
	tripHandler "github.com/MrJamesThe3rd/homeledger/internal/http/trip"
	"github.com/MrJamesThe3rd/homeledger/internal/milk"
	milkStore "github.com/MrJamesThe3rd/homeledger/internal/milk/store"
	"github.com/MrJamesThe3rd/homeledger/internal/report"
	"github.com/MrJamesThe3rd/homeledger/internal/trip"
	tripStore "github.com/MrJamesThe3rd/homeledger/internal/trip/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	accountSvc := account.NewService(accountStore.New(db))

	var (
		authService      = auth.NewService(authStore.New(db), auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))
		categoryService  = category.NewService(categoryStore.New(db))
		accounttxService = accounttx.NewService(accounttxStore.New(db), accountSvc)
		expenseService   = expense.NewService(expenseStore.New(db), categoryService)
		budgetService    = budget.NewService(budgetStore.New(db))
		tripService      = trip.NewService(tripStore.New(db))
		dashboardService = dashboard.NewService(dashboardStore.New(db))
		milkService      = milk.NewService(milkStore.New(db))
		reportService    = report.NewService(expenseService, budgetService, accounttxService, milkService, tripService)
	)

	router := ledgerHttp.New(authService, cfg.Server.AllowedOrigins, ledgerHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Accounts:     accountHandler.NewHandler(accountSvc),
		Transactions: accounttxHandler.NewHandler(accounttxService),
		Expenses:     expenseHandler.NewHandler(expenseService),
		Categories:   categoryHandler.NewHandler(categoryService),
		Budgets:      budgetHandler.NewHandler(budgetService),
		Trips:        tripHandler.NewHandler(tripService, reportService),
		Dashboard:    dashboardHandler.NewHandler(dashboardService),
		Milk:         milkHandler.NewHandler(milkService),
		Reports:      reportHandler.NewHandler(reportService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
