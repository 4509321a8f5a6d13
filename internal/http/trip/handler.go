package trip

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
	"github.com/MrJamesThe3rd/homeledger/internal/money"
	"github.com/MrJamesThe3rd/homeledger/internal/report"
	"github.com/MrJamesThe3rd/homeledger/internal/trip"
)

type Handler struct {
	svc     *trip.Service
	reports *report.Service
}

func NewHandler(svc *trip.Service, reports *report.Service) *Handler {
	return &Handler{svc: svc, reports: reports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/summary", h.summary)
	r.Get("/{id}/report", h.report)
	r.With(web.RequireWriter).Post("/", h.create)
	r.With(web.RequireWriter).Put("/{id}", h.update)
	r.With(web.RequireWriter).Delete("/{id}", h.delete)
}

type tripResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Purpose   string    `json:"purpose,omitempty"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Budget    int64     `json:"budget"`
	Notes     string    `json:"notes,omitempty"`
}

func toResponse(t *trip.Trip) tripResponse {
	return tripResponse{
		ID:        t.ID,
		Title:     t.Title,
		Purpose:   t.Purpose,
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Budget:    t.Budget,
		Notes:     t.Notes,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	claims := web.ClaimsFrom(r.Context())

	trips, err := h.svc.List(r.Context(), claims.HouseholdID)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		resp = append(resp, toResponse(t))
	}

	web.Respond(w, http.StatusOK, resp)
}

type summaryRowResponse struct {
	Trip  tripResponse `json:"trip"`
	Spent int64        `json:"spent"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	claims := web.ClaimsFrom(r.Context())

	rows, err := h.svc.Summary(r.Context(), claims.HouseholdID)
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]summaryRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, summaryRowResponse{
			Trip:  toResponse(row.Trip),
			Spent: row.Spent,
		})
	}

	web.Respond(w, http.StatusOK, resp)
}

// report streams the trip's sheets as a zip download.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	sheets, err := h.reports.TripReport(r.Context(), claims.HouseholdID, id)
	if err != nil {
		if errors.Is(err, trip.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "trip not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"trip_report_%s.zip\"", id))

	if err := report.WriteArchive(w, sheets); err != nil {
		// Headers are already gone; nothing left to tell the client.
		return
	}
}

type tripRequest struct {
	Title     string    `json:"title"`
	Purpose   string    `json:"purpose"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Budget    string    `json:"budget"`
	Notes     string    `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Title == "" {
		web.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	var budget int64

	if req.Budget != "" {
		var err error
		if budget, err = money.ParseAmount(req.Budget); err != nil {
			web.Error(w, http.StatusBadRequest, "invalid budget")
			return
		}
	}

	claims := web.ClaimsFrom(r.Context())

	t, err := h.svc.Create(r.Context(), trip.CreateParams{
		HouseholdID: claims.HouseholdID,
		Title:       req.Title,
		Purpose:     req.Purpose,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      budget,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, trip.ErrInvalidSpan) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var budget int64

	if req.Budget != "" {
		var err error
		if budget, err = money.ParseAmount(req.Budget); err != nil {
			web.Error(w, http.StatusBadRequest, "invalid budget")
			return
		}
	}

	claims := web.ClaimsFrom(r.Context())

	t, err := h.svc.Get(r.Context(), claims.HouseholdID, id)
	if err != nil {
		if errors.Is(err, trip.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "trip not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	t.Title = req.Title
	t.Purpose = req.Purpose
	t.StartDate = req.StartDate
	t.EndDate = req.EndDate
	t.Budget = budget
	t.Notes = req.Notes

	if err := h.svc.Update(r.Context(), t); err != nil {
		if errors.Is(err, trip.ErrInvalidSpan) {
			web.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusOK, toResponse(t))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		web.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	if err := h.svc.Delete(r.Context(), claims.HouseholdID, id); err != nil {
		if errors.Is(err, trip.ErrNotFound) {
			web.Error(w, http.StatusNotFound, "trip not found")
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
