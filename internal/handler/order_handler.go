package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dinehub/internal/model"
	"dinehub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// RegisterRoutes mounts the order endpoints.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{orderID}", h.GetByID)
		r.Patch("/{orderID}/items/status", h.UpdateLineItemStatus)
	})
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		var domainErr *model.DomainError

		switch {
		case errors.As(err, &domainErr):
			// Unresolvable menu references and malformed customer details
			// are both caller mistakes at this endpoint.
			writeDomainError(w, http.StatusBadRequest, domainErr, h.logger)
			return
		case strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "nil"):
			status = http.StatusBadRequest
		}

		writeError(w, status, "failed to create order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /api/orders requests.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{orderID} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeDomainError(w, http.StatusNotFound, model.ErrOrderNotFound, h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateLineItemStatus handles PATCH /api/orders/{orderID}/items/status
// requests.
func (h *OrderHandler) UpdateLineItemStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var req model.UpdateLineItemStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.UpdateLineItemStatus(r.Context(), orderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrOrderNotFound):
			writeDomainError(w, http.StatusNotFound, model.ErrOrderNotFound, h.logger)
		case errors.Is(err, model.ErrLineItemNotFound):
			writeDomainError(w, http.StatusNotFound, model.ErrLineItemNotFound, h.logger)
		case errors.Is(err, model.ErrInvalidStatus):
			writeDomainError(w, http.StatusBadRequest, model.ErrInvalidStatus, h.logger)
		case errors.Is(err, model.ErrOrderConflict):
			writeDomainError(w, http.StatusConflict, model.ErrOrderConflict, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to update line item status", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusOK, order)
}
