package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatusPending is the initial status of every order. No code path in
// this system transitions an order away from pending; fulfilment is an
// external collaborator.
const OrderStatusPending = "pending"

// Order represents a persisted checkout submission. Items holds the line
// items serialized as JSON, each capturing the catalogue price at the time
// the order was placed.
type Order struct {
	ID              uuid.UUID `json:"id" db:"id"`
	CustomerName    string    `json:"customerName" db:"customer_name"`
	CustomerEmail   string    `json:"customerEmail" db:"customer_email"`
	ShippingAddress string    `json:"shippingAddress" db:"shipping_address"`
	Items           string    `json:"items" db:"items"`
	Total           float64   `json:"total" db:"total"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// OrderLineItem is one entry of the serialized items payload.
type OrderLineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderRequest represents the request payload for creating an order.
// Total and the per-item prices are advisory only: the server recomputes the
// authoritative total from current catalogue prices.
type OrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	ShippingAddress string `json:"shippingAddress"`
	Items           string `json:"items"`
	Total           string `json:"total,omitempty"`
}
