package ordering

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	// OrderStatusOpen is the active cart; at most one per customer
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusClosed means a payment type was assigned; terminal
	OrderStatusClosed OrderStatus = "closed"
)

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusClosed:
		return true
	}
	return false
}

// CanTransitionTo checks if a status transition is allowed
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusOpen:
		return target == OrderStatusClosed
	case OrderStatusClosed:
		return false
	}
	return false
}

// Order is a customer's purchase. While open it acts as the cart;
// assigning a payment type closes it permanently. The status column
// and the nullable payment type reference move together: an order is
// open exactly when it has no payment type.
type Order struct {
	shared.BaseEntity
	CustomerID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"customer_id"`
	PaymentTypeID *uuid.UUID      `gorm:"type:uuid" json:"payment_type_id"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	LineItems     []OrderLineItem `gorm:"foreignKey:OrderID" json:"lineitems,omitempty"`
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new open order for a customer
func NewOrder(customerID uuid.UUID) (*Order, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID is required")
	}

	return &Order{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Status:     OrderStatusOpen,
	}, nil
}

// IsOpen reports whether the order still acts as the cart
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}

// Close assigns a payment type and completes the order
func (o *Order) Close(paymentTypeID uuid.UUID) error {
	if !o.Status.CanTransitionTo(OrderStatusClosed) {
		return shared.NewDomainError("INVALID_STATE", "Order has already been completed")
	}
	if paymentTypeID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Payment type is required to complete an order")
	}

	o.PaymentTypeID = &paymentTypeID
	o.Status = OrderStatusClosed
	return nil
}
