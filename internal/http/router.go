package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authsvc "github.com/MrJamesThe3rd/homeledger/internal/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/http/account"
	"github.com/MrJamesThe3rd/homeledger/internal/http/accounttx"
	"github.com/MrJamesThe3rd/homeledger/internal/http/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/http/budget"
	"github.com/MrJamesThe3rd/homeledger/internal/http/category"
	"github.com/MrJamesThe3rd/homeledger/internal/http/dashboard"
	"github.com/MrJamesThe3rd/homeledger/internal/http/expense"
	"github.com/MrJamesThe3rd/homeledger/internal/http/milk"
	"github.com/MrJamesThe3rd/homeledger/internal/http/report"
	"github.com/MrJamesThe3rd/homeledger/internal/http/trip"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
)

type Handlers struct {
	Auth         *auth.Handler
	Accounts     *account.Handler
	Transactions *accounttx.Handler
	Expenses     *expense.Handler
	Categories   *category.Handler
	Budgets      *budget.Handler
	Trips        *trip.Handler
	Dashboard    *dashboard.Handler
	Milk         *milk.Handler
	Reports      *report.Handler
}

func New(authService *authsvc.Service, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			h.Auth.Routes(r)

			r.Group(func(r chi.Router) {
				r.Use(web.Authenticator(authService))
				h.Auth.AuthedRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(web.Authenticator(authService))

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Accounts.Routes(r)
			})

			r.Route("/account-transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Transactions.Routes(r)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Expenses.Routes(r)
			})

			r.Route("/categories", h.Categories.Routes)

			r.Route("/budgets", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Budgets.Routes(r)
			})

			r.Route("/trips", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Trips.Routes(r)
			})

			r.Route("/dashboard", h.Dashboard.Routes)

			r.Route("/milk", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				h.Milk.Routes(r)
			})

			r.Route("/reports", h.Reports.Routes)
		})
	})

	return router
}
