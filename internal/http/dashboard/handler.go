package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homeledger/internal/dashboard"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/expense-summary", h.expenseSummary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	claims := web.ClaimsFrom(r.Context())

	summary, err := h.svc.Summary(r.Context(), claims.HouseholdID, month, year)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	web.Respond(w, http.StatusOK, summary)
}

func (h *Handler) expenseSummary(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	claims := web.ClaimsFrom(r.Context())

	slices, err := h.svc.ExpenseSummary(r.Context(), claims.HouseholdID, month, year)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	web.Respond(w, http.StatusOK, slices)
}
