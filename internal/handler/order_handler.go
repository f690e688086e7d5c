package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hedonic/internal/model"
	"hedonic/internal/service"

	"github.com/google/uuid"
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

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		var problems model.ValidationErrors
		var missing *model.MissingProductError

		switch {
		case errors.As(err, &problems):
			writeJSON(w, http.StatusBadRequest, ValidationResponse{
				Message: "Invalid order data",
				Errors:  problems,
			})
		case errors.As(err, &missing):
			writeMessage(w, http.StatusBadRequest, missing.Error(), h.logger)
		case errors.Is(err, model.ErrInvalidItems):
			writeMessage(w, http.StatusBadRequest, "Invalid items format", h.logger)
		default:
			writeMessage(w, http.StatusInternalServerError, "Failed to create order", h.logger)
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	// Expecting path: /api/orders/{id}
	path := r.URL.Path
	if len(path) < len("/api/orders/") {
		writeMessage(w, http.StatusBadRequest, "Order ID is required", h.logger)
		return
	}
	orderIDStr := path[len("/api/orders/"):]

	if orderIDStr == "" {
		writeMessage(w, http.StatusBadRequest, "Order ID is required", h.logger)
		return
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid order ID format", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			writeMessage(w, http.StatusNotFound, "Order not found", h.logger)
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
