package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homeledger/internal/account"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.With(web.RequireWriter).Post("/", h.create)
}

type accountResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Type    account.Type `json:"type"`
	Balance int64        `json:"balance"`
	Note    string       `json:"note,omitempty"`
}

func toResponse(a *account.Account) accountResponse {
	return accountResponse{
		ID:      a.ID.String(),
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
		Note:    a.Note,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims := web.ClaimsFrom(r.Context())

	accounts, err := h.svc.List(r.Context(), claims.HouseholdID)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, toResponse(a))
	}

	web.Respond(w, http.StatusOK, resp)
}

type createAccountRequest struct {
	Name    string       `json:"name"`
	Type    account.Type `json:"type"`
	Balance string       `json:"balance"`
	Note    string       `json:"note"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		web.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	// Opening balance may legitimately be zero.
	var balance int64

	if req.Balance != "" {
		var err error
		if balance, err = money.ParseAmount(req.Balance); err != nil {
			web.Error(w, http.StatusBadRequest, "invalid balance")
			return
		}
	}

	claims := web.ClaimsFrom(r.Context())

	a, err := h.svc.Create(r.Context(), account.CreateParams{
		HouseholdID: claims.HouseholdID,
		Name:        req.Name,
		Type:        req.Type,
		Balance:     balance,
		Note:        req.Note,
	})
	if err != nil {
		if errors.Is(err, account.ErrInvalidType) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(a))
}
