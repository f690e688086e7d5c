package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"hedonic/internal/model"
	"hedonic/internal/repository"
	"hedonic/internal/tax"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder validates the submission, recomputes the authoritative total
// from current catalogue prices and the shipping-state tax rate, and
// persists the order with pending status. Client-supplied prices and total
// are advisory only and never trusted.
func (s *orderService) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("order request validation failed")
		return nil, err
	}

	var submitted []model.OrderLineItem
	if err := json.Unmarshal([]byte(req.Items), &submitted); err != nil {
		s.logger.Warn().Err(err).Msg("order items payload not parseable")
		return nil, model.ErrInvalidItems
	}
	if len(submitted) == 0 {
		return nil, model.ValidationErrors{{Field: "items", Message: "must contain at least one line item"}}
	}

	for i, item := range submitted {
		if item.ProductID == "" {
			return nil, model.ValidationErrors{{Field: "items", Message: fmt.Sprintf("item %d: productId is required", i)}}
		}
		if item.Quantity <= 0 {
			return nil, model.ValidationErrors{{Field: "items", Message: fmt.Sprintf("item %d: quantity must be positive", i)}}
		}
	}

	// Recompute the subtotal from current catalogue prices. The line items
	// are re-captured with those prices so the stored order reflects the
	// price at time of order.
	subtotal := 0.0
	lineItems := make([]model.OrderLineItem, len(submitted))
	for i, item := range submitted {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			s.logger.Error().Err(err).Str("product_id", item.ProductID).Msg("failed to look up product")
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		if product == nil {
			s.logger.Warn().Str("product_id", item.ProductID).Msg("order references missing product")
			return nil, &model.MissingProductError{ProductID: item.ProductID}
		}

		subtotal += product.Price * float64(item.Quantity)
		lineItems[i] = model.OrderLineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Price:     product.Price,
		}
	}

	rate := tax.RateForAddress(req.ShippingAddress)
	total := round2(subtotal + subtotal*rate)

	items, err := json.Marshal(lineItems)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	order := &model.Order{
		ID:              uuid.New(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Items:           string(items),
		Total:           total,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(lineItems)).
		Float64("subtotal", round2(subtotal)).
		Float64("tax_rate", rate).
		Float64("total", total).
		Msg("order created successfully")

	return order, nil
}

// GetByID retrieves an order by its ID.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// validateOrderRequest checks required fields, collecting every field-level
// problem before returning.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.ValidationErrors{{Field: "body", Message: "order request is required"}}
	}

	var problems model.ValidationErrors
	if req.CustomerName == "" {
		problems = append(problems, model.FieldError{Field: "customerName", Message: "is required"})
	}
	if req.CustomerEmail == "" {
		problems = append(problems, model.FieldError{Field: "customerEmail", Message: "is required"})
	}
	if req.ShippingAddress == "" {
		problems = append(problems, model.FieldError{Field: "shippingAddress", Message: "is required"})
	}
	if req.Items == "" {
		problems = append(problems, model.FieldError{Field: "items", Message: "is required"})
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
