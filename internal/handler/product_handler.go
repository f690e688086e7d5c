package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hedonic/internal/model"
	"hedonic/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with pagination.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	limit := 50 // default
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid offset parameter", h.logger)
			return
		}
	}

	products, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetBySlug handles GET /api/products/{slug} requests.
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{slug}
	path := r.URL.Path
	if len(path) < len("/api/products/") {
		writeMessage(w, http.StatusBadRequest, "Product slug is required", h.logger)
		return
	}
	slug := path[len("/api/products/"):]

	if slug == "" {
		writeMessage(w, http.StatusBadRequest, "Product slug is required", h.logger)
		return
	}

	product, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeMessage(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to retrieve product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
