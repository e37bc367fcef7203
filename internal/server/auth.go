package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"watchshelf/internal/auth"
	"watchshelf/internal/catalog"
	"watchshelf/internal/session"
)

// authHandler exposes the session manager over HTTP.
type authHandler struct {
	sessions *session.Manager
	log      *slog.Logger
	validate *validator.Validate
}

func newAuthHandler(sessions *session.Manager, log *slog.Logger) *authHandler {
	return &authHandler{sessions: sessions, log: log, validate: validator.New()}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.sessions.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		authFailuresTotal.Inc()
		renderError(w, r, err)
		return
	}

	registrationsTotal.Inc()
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, OKWith(user))
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}

	user, err := h.sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		authFailuresTotal.Inc()
		renderError(w, r, err)
		return
	}

	loginsTotal.Inc()
	render.JSON(w, r, OKWith(user))
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, OK())
}

func (h *authHandler) me(w http.ResponseWriter, r *http.Request) {
	current := h.sessions.Current()
	if current == nil {
		renderError(w, r, auth.ErrNotAuthenticated)
		return
	}
	render.JSON(w, r, OKWith(current))
}

func (h *authHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.sessions.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, OK())
}

func (h *authHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.sessions.ResetPassword(r.Context(), req.Email); err != nil {
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, OKWith(map[string]string{"message": "password reset link sent"}))
}

// decode parses and validates the request body, rendering the failure itself.
// Returns false when the handler should stop.
func (h *authHandler) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := render.DecodeJSON(r.Body, req); err != nil {
		h.log.Error("failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("failed to decode request"))
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ValidationError(validateErrs))
			return false
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("invalid request"))
		return false
	}
	return true
}

// renderError maps the expected error kinds onto HTTP statuses; anything
// unexpected is a 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrEmailExists):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrEmailNotFound), errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCurrentPassword), errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}
