package accounttx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
	"github.com/MrJamesThe3rd/homeledger/internal/accounttx"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/listing"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type Handler struct {
	svc *accounttx.Service
}

func NewHandler(svc *accounttx.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/recent", h.recent)
	r.With(web.RequireWriter).Post("/", h.transfer)
	r.With(web.RequireWriter).Post("/salary", h.salary)
}

type transactionResponse struct {
	ID            uuid.UUID      `json:"id"`
	Type          accounttx.Type `json:"type"`
	Amount        int64          `json:"amount"`
	Date          time.Time      `json:"date"`
	FromAccountID *uuid.UUID     `json:"fromAccountId,omitempty"`
	ToAccountID   *uuid.UUID     `json:"toAccountId,omitempty"`
	AccountID     *uuid.UUID     `json:"accountId,omitempty"`
	Note          string         `json:"note,omitempty"`
}

type listResponse struct {
	Transactions []transactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

func toResponse(tx *accounttx.Transaction) transactionResponse {
	return transactionResponse{
		ID:            tx.ID,
		Type:          tx.Type,
		Amount:        tx.Amount,
		Date:          tx.Date,
		FromAccountID: tx.FromAccountID,
		ToAccountID:   tx.ToAccountID,
		AccountID:     tx.AccountID,
		Note:          tx.Note,
	}
}

func toResponseList(txs []*accounttx.Transaction) []transactionResponse {
	resp := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, toResponse(tx))
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	pager := listing.Normalize(
		web.QueryInt(r, "page", 1),
		web.QueryInt(r, "limit", listing.DefaultLimit),
	)

	filter := accounttx.ListFilter{Page: pager.Page, Limit: pager.Limit}

	if s := r.URL.Query().Get("type"); s != "" {
		t := accounttx.Type(s)
		filter.Type = &t
	}

	if m := web.QueryInt(r, "month", -1); m >= 0 && m <= 11 {
		month := time.Month(m + 1)
		filter.Month = &month
	}

	if y := web.QueryInt(r, "year", 0); y > 0 {
		filter.Year = &y
	}

	claims := web.ClaimsFrom(r.Context())

	txs, total, err := h.svc.List(r.Context(), claims.HouseholdID, filter)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	web.Respond(w, http.StatusOK, listResponse{
		Transactions: toResponseList(txs),
		Total:        total,
	})
}

func (h *Handler) recent(w http.ResponseWriter, r *http.Request) {
	month, year := web.QueryMonthYear(r)
	claims := web.ClaimsFrom(r.Context())

	txs, err := h.svc.Recent(r.Context(), claims.HouseholdID,
		time.Month(month+1), year, web.QueryInt(r, "limit", 5))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	web.Respond(w, http.StatusOK, toResponseList(txs))
}

type transferRequest struct {
	Type          accounttx.Type `json:"type"`
	Amount        string         `json:"amount"`
	FromAccountID uuid.UUID      `json:"fromAccountId"`
	ToAccountID   uuid.UUID      `json:"toAccountId"`
	Note          string         `json:"note"`
	Date          time.Time      `json:"date"`
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
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

	tx, err := h.svc.Transfer(r.Context(), accounttx.TransferParams{
		HouseholdID:   claims.HouseholdID,
		SelectedType:  req.Type,
		Amount:        amount,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Note:          req.Note,
		Date:          req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, accounttx.ErrSameAccount),
			errors.Is(err, accounttx.ErrMissingAccount),
			errors.Is(err, accounttx.ErrInvalidAmount):
			web.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, account.ErrNotFound):
			web.Error(w, http.StatusNotFound, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(tx))
}

type salaryRequest struct {
	AccountID uuid.UUID `json:"accountId"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note"`
	Date      time.Time `json:"date"`
}

func (h *Handler) salary(w http.ResponseWriter, r *http.Request) {
	var req salaryRequest
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

	tx, err := h.svc.RecordSalary(r.Context(), accounttx.SalaryParams{
		HouseholdID: claims.HouseholdID,
		AccountID:   req.AccountID,
		Amount:      amount,
		Note:        req.Note,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, accounttx.ErrMissingAccount), errors.Is(err, accounttx.ErrInvalidAmount):
			web.Error(w, http.StatusBadRequest, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(tx))
}
