package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dinehub/internal/model"
	"dinehub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// UserHandler handles user HTTP requests.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// RegisterRoutes mounts the user endpoints.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{userID}", h.GetByID)
		r.Put("/{userID}", h.Update)
		r.Delete("/{userID}", h.Delete)
	})
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &user)
	if err != nil {
		h.writeUserError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetByID handles GET /api/users/{userID} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetByID(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.writeUserError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update handles PUT /api/users/{userID} requests.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "userID"), &user)
	if err != nil {
		h.writeUserError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/users/{userID} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
		h.writeUserError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) writeUserError(w http.ResponseWriter, err error, fallback int) {
	if errors.Is(err, model.ErrUserNotFound) {
		writeDomainError(w, http.StatusNotFound, model.ErrUserNotFound, h.logger)
		return
	}
	writeError(w, fallback, err.Error(), h.logger)
}
