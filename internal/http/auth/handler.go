package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homeledger/internal/auth"
	"github.com/MrJamesThe3rd/homeledger/internal/http/web"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes registers the unauthenticated endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/register", h.register)
}

// AuthedRoutes registers the endpoints that require a valid token.
func (h *Handler) AuthedRoutes(r chi.Router) {
	r.Post("/change-password", h.changePassword)
	r.Get("/attempts", h.attempts)
}

type loginRequest struct {
	UserName string         `json:"username"`
	Password string         `json:"password"`
	Location *auth.Location `json:"location"`
}

type userResponse struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

type householdResponse struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	Token     string            `json:"token"`
	User      userResponse      `json:"user"`
	Household householdResponse `json:"household"`
}

func toSessionResponse(s *auth.Session) sessionResponse {
	return sessionResponse{
		Token: s.Token,
		User: userResponse{
			Name:  s.User.Name,
			Email: s.User.Email,
			Role:  s.User.Role,
		},
		Household: householdResponse{Name: s.Household.Name},
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.svc.Login(r.Context(), auth.LoginParams{
		UserName:       req.UserName,
		Password:       req.Password,
		ClientLocation: req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrLocationRequired):
			web.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			web.Error(w, http.StatusUnauthorized, err.Error())
		default:
			web.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	web.Respond(w, http.StatusOK, toSessionResponse(session))
}

type registerRequest struct {
	Name          string `json:"name"`
	UserName      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	HouseholdName string `json:"householdName"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.UserName == "" || req.Password == "" {
		web.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Name:          req.Name,
		UserName:      req.UserName,
		Email:         req.Email,
		Password:      req.Password,
		HouseholdName: req.HouseholdName,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUserExists) {
			web.Error(w, http.StatusConflict, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	web.Respond(w, http.StatusCreated, toSessionResponse(session))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := web.ClaimsFrom(r.Context())

	err := h.svc.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			web.Error(w, http.StatusUnauthorized, err.Error())
			return
		}

		web.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type attemptResponse struct {
	UserName  string         `json:"username"`
	Success   bool           `json:"success"`
	Location  *auth.Location `json:"location,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (h *Handler) attempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.svc.Attempts(r.Context(), web.QueryInt(r, "limit", 20))
	if err != nil {
		web.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]attemptResponse, 0, len(attempts))
	for _, a := range attempts {
		resp = append(resp, attemptResponse{
			UserName:  a.UserName,
			Success:   a.Success,
			Location:  a.Location,
			CreatedAt: a.CreatedAt,
		})
	}

	web.Respond(w, http.StatusOK, resp)
}
