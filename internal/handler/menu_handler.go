package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dinehub/internal/model"
	"dinehub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// MenuHandler handles menu-item HTTP requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// RegisterRoutes mounts the menu endpoints.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/menu", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{itemID}", h.GetByID)
		r.Put("/{itemID}", h.Update)
		r.Patch("/{itemID}/availability", h.UpdateAvailability)
		r.Delete("/{itemID}", h.Delete)
	})
}

// Create handles POST /api/menu requests.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &item)
	if err != nil {
		h.writeMenuError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /api/menu requests. Optional query parameters narrow the
// result: category, veg, available, popular.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := model.MenuFilter{}

	if category := r.URL.Query().Get("category"); category != "" {
		filter.CategoryID = &category
	}
	filter.Veg = parseBoolParam(r, "veg")
	filter.Available = parseBoolParam(r, "available")
	filter.Popular = parseBoolParam(r, "popular")

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list menu items", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/menu/{itemID} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetByID(r.Context(), chi.URLParam(r, "itemID"))
	if err != nil {
		h.writeMenuError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /api/menu/{itemID} requests.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var item model.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "itemID"), &item)
	if err != nil {
		h.writeMenuError(w, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// UpdateAvailability handles PATCH /api/menu/{itemID}/availability requests.
func (h *MenuHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Availability bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	itemID := chi.URLParam(r, "itemID")
	if err := h.service.SetAvailability(r.Context(), itemID, req.Availability); err != nil {
		h.writeMenuError(w, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"availability": req.Availability})
}

// Delete handles DELETE /api/menu/{itemID} requests.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		h.writeMenuError(w, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseBoolParam reads an optional boolean query parameter, returning nil
// when absent or malformed.
func parseBoolParam(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func (h *MenuHandler) writeMenuError(w http.ResponseWriter, err error, fallback int) {
	switch {
	case errors.Is(err, model.ErrMenuItemNotFound):
		writeDomainError(w, http.StatusNotFound, model.ErrMenuItemNotFound, h.logger)
	case errors.Is(err, model.ErrCategoryNotFound):
		writeDomainError(w, http.StatusBadRequest, model.ErrCategoryNotFound, h.logger)
	default:
		writeError(w, fallback, err.Error(), h.logger)
	}
}
