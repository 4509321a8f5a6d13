package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homeledger/internal/category"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
}

type categoryResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Type          category.Type `json:"type"`
	Subcategories []string      `json:"subcategories"`
	Color         string        `json:"color,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims := web.ClaimsFrom(r.Context())

	categories, err := h.svc.List(r.Context(), claims.HouseholdID)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]categoryResponse, 0, len(categories))

	for _, c := range categories {
		names := make([]string, 0, len(c.Subcategories))
		for _, sc := range c.Subcategories {
			names = append(names, sc.Name)
		}

		resp = append(resp, categoryResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Type:          c.Type,
			Subcategories: names,
			Color:         c.Color,
		})
	}

	web.Respond(w, http.StatusOK, resp)
}
