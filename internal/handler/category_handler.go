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

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// RegisterRoutes mounts the category endpoints.
func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{categoryID}", h.GetByID)
		r.Put("/{categoryID}", h.Update)
		r.Delete("/{categoryID}", h.Delete)
	})
}

// Create handles POST /api/categories requests.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &category)
	if err != nil {
		h.writeCategoryError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/categories requests.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /api/categories/{categoryID} requests.
func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetByID(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		h.writeCategoryError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

// Update handles PUT /api/categories/{categoryID} requests.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "categoryID"), &category)
	if err != nil {
		h.writeCategoryError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/categories/{categoryID} requests.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		h.writeCategoryError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CategoryHandler) writeCategoryError(w http.ResponseWriter, err error, fallback int) {
	switch {
	case errors.Is(err, model.ErrCategoryNotFound):
		writeDomainError(w, http.StatusNotFound, model.ErrCategoryNotFound, h.logger)
	case errors.Is(err, model.ErrCategoryExists):
		writeDomainError(w, http.StatusConflict, model.ErrCategoryExists, h.logger)
	default:
		writeError(w, fallback, err.Error(), h.logger)
	}
}
