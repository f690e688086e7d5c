package service

import (
	"context"

	"hedonic/internal/model"

	"github.com/google/uuid"
)

// ProductService defines read-only catalogue operations.
type ProductService interface {
	// GetAll retrieves products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetBySlug retrieves a single product by its URL-safe slug.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// OrderService defines operations for order submission and retrieval.
type OrderService interface {
	// CreateOrder validates the submission, recomputes the authoritative
	// total from current catalogue prices, and persists the order.
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
}
