package milk

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/listing"
	"github.com/MrJamesThe3rd/homeledger/internal/milk"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type Handler struct {
	svc *milk.Service
}

func NewHandler(svc *milk.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/settlements", h.settlements)
	r.With(web.RequireWriter).Post("/", h.create)
	r.With(web.RequireWriter).Post("/settle", h.settle)
	r.With(web.RequireWriter).Delete("/{id}", h.delete)
}

type entryResponse struct {
	ID       uuid.UUID       `json:"id"`
	Date     time.Time       `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     int64           `json:"rate"`
	Amount   int64           `json:"amount"`
}

type listResponse struct {
	Entries []entryResponse `json:"entries"`
	Total   int             `json:"total"`
	Settled bool            `json:"settled"`
}

func toResponse(e *milk.Entry) entryResponse {
	return entryResponse{
		ID:       e.ID,
		Date:     e.Date,
		Quantity: e.Quantity,
		Rate:     e.Rate,
		Amount:   e.Amount,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	pager := listing.Normalize(
		web.QueryInt(r, "page", 1),
		web.QueryInt(r, "limit", listing.DefaultLimit),
	)

	claims := web.ClaimsFrom(r.Context())

	entries, total, err := h.svc.List(r.Context(), claims.HouseholdID, month, year, pager.Page, pager.Limit)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	settled, err := h.svc.IsSettled(r.Context(), claims.HouseholdID, month, year)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := listResponse{
		Entries: make([]entryResponse, 0, len(entries)),
		Total:   total,
		Settled: settled,
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toResponse(e))
	}

	web.Respond(w, http.StatusOK, resp)
}

type createEntryRequest struct {
	Date     time.Time `json:"date"`
	Quantity string    `json:"quantity"`
	Rate     string    `json:"rate"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	rate, err := money.ParseAmount(req.Rate)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid rate")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	e, err := h.svc.Add(r.Context(), milk.AddParams{
		HouseholdID: claims.HouseholdID,
		Date:        req.Date,
		Quantity:    quantity,
		Rate:        rate,
	})
	if err != nil {
		switch {
		case errors.Is(err, milk.ErrInvalidEntry):
			web.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, milk.ErrMonthSettled):
			web.Error(w, http.StatusConflict, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	if err := h.svc.Delete(r.Context(), claims.HouseholdID, id); err != nil {
		switch {
		case errors.Is(err, milk.ErrNotFound):
			web.Error(w, http.StatusNotFound, "milk entry not found")
		case errors.Is(err, milk.ErrMonthSettled):
			web.Error(w, http.StatusConflict, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type settledMonthResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h *Handler) settlements(w http.ResponseWriter, r *http.Request) {
	claims := web.ClaimsFrom(r.Context())

	months, err := h.svc.SettledMonths(r.Context(), claims.HouseholdID)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]settledMonthResponse, 0, len(months))
	for _, m := range months {
		resp = append(resp, settledMonthResponse{Month: m.Month, Year: m.Year})
	}

	web.Respond(w, http.StatusOK, resp)
}

type settleRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type settlementResponse struct {
	ID          uuid.UUID `json:"id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	TotalAmount int64     `json:"totalAmount"`
	SettledAt   time.Time `json:"settledAt"`
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	settlement, err := h.svc.Settle(r.Context(), claims.HouseholdID, req.Month, req.Year)
	if err != nil {
		switch {
		case errors.Is(err, milk.ErrMonthSettled):
			web.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, milk.ErrNothingToSettle):
			web.Error(w, http.StatusBadRequest, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	web.Respond(w, http.StatusCreated, settlementResponse{
		ID:          settlement.ID,
		Month:       settlement.Month,
		Year:        settlement.Year,
		TotalAmount: settlement.TotalAmount,
		SettledAt:   settlement.SettledAt,
	})
}
