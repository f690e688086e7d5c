package repository

import (
	"context"

	"hedonic/internal/model"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access
// operations. Products are read-only from the storefront's perspective;
// Create exists for the seed step only.
type ProductRepository interface {
	// GetAll retrieves products in insertion order with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetBySlug retrieves a single product by its URL-safe slug. Returns nil
	// when the product does not exist.
	GetBySlug(ctx context.Context, slug string) (*model.Product, error)

	// Create inserts a new product. Used by the one-time seed step.
	Create(ctx context.Context, product *model.Product) error

	// Count returns the number of products in the catalogue.
	Count(ctx context.Context) (int, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts a new order row.
	Create(ctx context.Context, order *model.Order) error

	// GetByID retrieves an order by its ID. Returns nil when the order does
	// not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// GetAll retrieves orders with pagination support, newest first.
	GetAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// Count returns the number of persisted orders.
	Count(ctx context.Context) (int, error)
}
