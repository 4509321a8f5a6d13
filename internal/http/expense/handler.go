package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/category"
	"github.com/MrJamesThe3rd/homeledger/internal/expense"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/listing"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.With(web.RequireWriter).Post("/", h.create)
	r.With(web.RequireWriter).Put("/{id}", h.update)
	r.With(web.RequireWriter).Delete("/{id}", h.delete)
}

type expenseResponse struct {
	ID          uuid.UUID  `json:"id"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory,omitempty"`
	AccountID   uuid.UUID  `json:"accountId"`
	Date        time.Time  `json:"date"`
	TripID      *uuid.UUID `json:"tripId,omitempty"`
}

type listResponse struct {
	Expenses []expenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		AccountID:   e.AccountID,
		Date:        e.Date,
		TripID:      e.TripID,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	pager := listing.Normalize(
		web.QueryInt(r, "page", 1),
		web.QueryInt(r, "limit", listing.DefaultLimit),
	)

	filter := expense.ListFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
		Page:     pager.Page,
		Limit:    pager.Limit,
	}

	if s := r.URL.Query().Get("accountId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			web.Error(w, http.StatusBadRequest, "invalid accountId")
			return
		}

		filter.AccountID = &id
	}

	if s := r.URL.Query().Get("tripId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			web.Error(w, http.StatusBadRequest, "invalid tripId")
			return
		}

		filter.TripID = &id
	}

	if s := r.URL.Query().Get("startDate"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = &t
		}
	}

	if s := r.URL.Query().Get("endDate"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = &t
		}
	}

	claims := web.ClaimsFrom(r.Context())

	expenses, total, err := h.svc.List(r.Context(), claims.HouseholdID, filter)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := listResponse{
		Expenses: make([]expenseResponse, 0, len(expenses)),
		Total:    total,
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, toResponse(e))
	}

	web.Respond(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	e, err := h.svc.Get(r.Context(), claims.HouseholdID, id)
	if err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "expense not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusOK, toResponse(e))
}

type createExpenseRequest struct {
	Amount      string     `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Subcategory string     `json:"subcategory"`
	AccountID   uuid.UUID  `json:"accountId"`
	Date        time.Time  `json:"date"`
	TripID      *uuid.UUID `json:"tripId"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
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

	e, err := h.svc.Create(r.Context(), expense.CreateParams{
		HouseholdID: claims.HouseholdID,
		Amount:      amount,
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		AccountID:   req.AccountID,
		Date:        req.Date,
		TripID:      req.TripID,
	})
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	web.Respond(w, http.StatusCreated, toResponse(e))
}

type updateExpenseRequest struct {
	Amount      *string    `json:"amount"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Subcategory *string    `json:"subcategory"`
	AccountID   *uuid.UUID `json:"accountId"`
	Date        *time.Time `json:"date"`
	TripID      *uuid.UUID `json:"tripId"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := expense.UpdateParams{
		Description: req.Description,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		AccountID:   req.AccountID,
		Date:        req.Date,
		TripID:      req.TripID,
	}

	if req.Amount != nil {
		amount, err := money.ParseAmount(*req.Amount)
		if err != nil {
			web.Error(w, http.StatusBadRequest, "invalid amount")
			return
		}

		params.Amount = &amount
	}

	claims := web.ClaimsFrom(r.Context())

	e, err := h.svc.Update(r.Context(), claims.HouseholdID, id, params)
	if err != nil {
		writeExpenseError(w, err)
		return
	}

	web.Respond(w, http.StatusOK, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	if err := h.svc.Delete(r.Context(), claims.HouseholdID, id); err != nil {
		if errors.Is(err, expense.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "expense not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeExpenseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, expense.ErrInvalidAmount),
		errors.Is(err, category.ErrUnknownSubcategory),
		errors.Is(err, category.ErrNotFound):
		web.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, expense.ErrNotFound):
		web.Error(w, http.StatusNotFound, "expense not found")
	default:
		web.Error(w, http.StatusInternalServerError, "internal error")
	}
}
