package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindOpenByCustomer returns the customer's open order with line
	// items preloaded, or shared.ErrNotFound when the cart is empty
	FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*Order, error)
	// GetOrCreateOpen resolves the customer's open order, creating one
	// inside a transaction when none exists
	GetOrCreateOpen(ctx context.Context, customerID uuid.UUID) (*Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, paymentTypeID *uuid.UUID) ([]Order, error)
	FindByStatus(ctx context.Context, status OrderStatus) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	// DeleteWithLineItems removes the order's line items first, then
	// the order itself
	DeleteWithLineItems(ctx context.Context, id uuid.UUID) error
}

// LineItemRepository defines persistence operations for order line items
type LineItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderLineItem, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderLineItem, error)
	Save(ctx context.Context, item *OrderLineItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
