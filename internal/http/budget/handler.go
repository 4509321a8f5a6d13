package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/budget"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/check", h.check)
	r.Get("/summary", h.summary)
	r.With(web.RequireWriter).Post("/", h.create)
	r.With(web.RequireWriter).Put("/{id}", h.update)
	r.With(web.RequireWriter).Delete("/{id}", h.delete)
}

type budgetResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Amount      int64     `json:"amount"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
}

func toResponse(b *budget.Budget) budgetResponse {
	return budgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Subcategory: b.Subcategory,
		Amount:      b.Amount,
		Month:       b.Month,
		Year:        b.Year,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	claims := web.ClaimsFrom(r.Context())

	budgets, err := h.svc.List(r.Context(), claims.HouseholdID, month, year)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		resp = append(resp, toResponse(b))
	}

	web.Respond(w, http.StatusOK, resp)
}

type checkResponse struct {
	Status    budget.Status `json:"status"`
	Remaining *int64        `json:"remaining,omitempty"`
	OverBy    *int64        `json:"overBy,omitempty"`
}

// check evaluates a hypothetical expense without committing it.
// Query: category, subcategory, amount, date.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	categoryName := q.Get("category")
	if categoryName == "" {
		web.Error(w, http.StatusBadRequest, "category is required")
		return
	}

	amount, err := money.ParseAmount(q.Get("amount"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid amount")
		return
	}

	date := time.Now()

	if s := q.Get("date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			date = t
		}
	}

	claims := web.ClaimsFrom(r.Context())

	result, err := h.svc.Check(r.Context(), budget.CheckParams{
		HouseholdID: claims.HouseholdID,
		Category:    categoryName,
		Subcategory: q.Get("subcategory"),
		Amount:      amount,
		Date:        date,
	})
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := checkResponse{Status: result.Status}

	switch result.Status {
	case budget.StatusOverBudget:
		resp.OverBy = &result.OverBy
	case budget.StatusOK, budget.StatusNearLimit:
		resp.Remaining = &result.Remaining
	}

	web.Respond(w, http.StatusOK, resp)
}

type summaryRowResponse struct {
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Budgeted    int64   `json:"budgeted"`
	Spent       int64   `json:"spent"`
	Percentage  float64 `json:"percentage"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	claims := web.ClaimsFrom(r.Context())

	rows, err := h.svc.Summary(r.Context(), claims.HouseholdID, month, year)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]summaryRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, summaryRowResponse{
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Budgeted:    row.Budgeted,
			Spent:       row.Spent,
			Percentage:  row.Percentage,
		})
	}

	web.Respond(w, http.StatusOK, resp)
}

type budgetRequest struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Amount      string `json:"amount"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid amount")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	b, err := h.svc.Create(r.Context(), budget.CreateParams{
		HouseholdID: claims.HouseholdID,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Amount:      amount,
		Month:       req.Month,
		Year:        req.Year,
	})
	if err != nil {
		if errors.Is(err, budget.ErrInvalidMonth) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(b))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req budgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid amount")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	b, err := h.svc.Get(r.Context(), claims.HouseholdID, id)
	if err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "budget not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	b.Category = req.Category
	b.Subcategory = req.Subcategory
	b.Amount = amount
	b.Month = req.Month
	b.Year = req.Year

	if err := h.svc.Update(r.Context(), b); err != nil {
		if errors.Is(err, budget.ErrInvalidMonth) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusOK, toResponse(b))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	if err := h.svc.Delete(r.Context(), claims.HouseholdID, id); err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "budget not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
