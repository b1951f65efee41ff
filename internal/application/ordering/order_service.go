package ordering

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderService handles order history and completion
type OrderService struct {
	orders       ordering.OrderRepository
	paymentTypes identity.PaymentTypeRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders ordering.OrderRepository, paymentTypes identity.PaymentTypeRepository) *OrderService {
	return &OrderService{
		orders:       orders,
		paymentTypes: paymentTypes,
	}
}

// List returns the customer's orders, optionally narrowed to those
// paid with a specific payment type
func (s *OrderService) List(ctx context.Context, customerID uuid.UUID, filter OrderListFilter) ([]OrderResponse, error) {
	var paymentTypeID *uuid.UUID
	if filter.PaymentTypeID != "" {
		id, err := uuid.Parse(filter.PaymentTypeID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment type ID")
		}
		paymentTypeID = &id
	}

	orders, err := s.orders.FindByCustomer(ctx, customerID, paymentTypeID)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses, nil
}

// GetByID returns one of the customer's orders with line items
func (s *OrderService) GetByID(ctx context.Context, customerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.NewDomainError("FORBIDDEN", "Order belongs to another customer")
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Complete assigns a payment type to the order and closes it. The
// payment type must belong to the same customer as the order.
func (s *OrderService) Complete(ctx context.Context, customerID, orderID uuid.UUID, req CompleteOrderRequest) (*OrderResponse, error) {
	paymentTypeID, err := uuid.Parse(req.PaymentTypeID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment type ID")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.NewDomainError("FORBIDDEN", "Order belongs to another customer")
	}

	paymentType, err := s.paymentTypes.FindByID(ctx, paymentTypeID)
	if err != nil {
		return nil, err
	}
	if paymentType.CustomerID != customerID {
		return nil, shared.NewDomainError("FORBIDDEN", "Payment type belongs to another customer")
	}

	if err := order.Close(paymentType.ID); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}
