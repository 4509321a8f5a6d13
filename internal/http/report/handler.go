package report

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/monthly", h.sheet(h.svc.Monthly))
	r.Get("/budget-summary", h.sheet(h.svc.BudgetSummary))
	r.Get("/transactions", h.sheet(h.svc.Transactions))
	r.Get("/milk-summary", h.sheet(h.svc.MilkSummary))
}

type sheetFunc func(ctx context.Context, householdID uuid.UUID, month, year int) (report.Sheet, error)

// sheet adapts a period-scoped report into a CSV download handler.
func (h *Handler) sheet(build sheetFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month, year := web.QueryMonthYear(r)
		if month < 0 || month > 11 {
			web.Error(w, http.StatusBadRequest, "month must be between 0 and 11")
			return
		}

		claims := web.ClaimsFrom(r.Context())

		sheet, err := build(r.Context(), claims.HouseholdID, month, year)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", sheet.Filename()))

		if err := report.WriteCSV(w, sheet); err != nil {
			// Headers are already gone; nothing left to tell the client.
			return
		}
	}
}
