package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cinelog/internal/identity/models"
	"cinelog/internal/transport/shared"
	dErrors "cinelog/pkg/domainerrors"
)

// Service defines the identity operations the handler dispatches to.
type Service interface {
	Signup(ctx context.Context, name, email, password string) (*models.Profile, error)
	Signin(ctx context.Context, email, password string) (*models.Profile, error)
}

// Handler exposes signup and signin over HTTP.
type Handler struct {
	identity Service
	logger   *slog.Logger
}

func New(identity Service, logger *slog.Logger) *Handler {
	return &Handler{identity: identity, logger: logger}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/signup", h.handleSignup)
	r.Post("/auth/signin", h.handleSignin)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.identity.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeConflict) {
			h.logger.Error("signup failed", "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "user created successfully",
		"user":    profile,
	})
}

func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeValidation, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		shared.WriteError(w, err)
		return
	}

	profile, err := h.identity.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeInvalidCredentials) {
			h.logger.Error("signin failed", "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "signin successful",
		"user":    profile,
	})
}
