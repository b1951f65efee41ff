package ordering

import (
	"time"

	appcatalog "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/google/uuid"
)

// AddToCartRequest identifies the product to place in the cart
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// CompleteOrderRequest assigns a payment type to close an order
type CompleteOrderRequest struct {
	PaymentTypeID string `json:"payment_type_id" binding:"required,uuid"`
}

// OrderListFilter carries the order list query parameters
type OrderListFilter struct {
	PaymentTypeID string `form:"payment_id" binding:"omitempty,uuid"`
}

// LineItemResponse represents a product placed on an order
type LineItemResponse struct {
	ID      uuid.UUID                   `json:"id"`
	OrderID uuid.UUID                   `json:"order_id"`
	Product *appcatalog.ProductResponse `json:"product,omitempty"`
}

// OrderResponse represents an order with its line items
type OrderResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    uuid.UUID          `json:"customer_id"`
	PaymentTypeID *uuid.UUID         `json:"payment_type_id"`
	Status        string             `json:"status"`
	LineItems     []LineItemResponse `json:"lineitems"`
	CreatedAt     time.Time          `json:"created_date"`
}

// CartResponse is the order response plus the item count. Size counts
// line item rows, so the same product added twice counts twice.
type CartResponse struct {
	OrderResponse
	Size int `json:"size"`
}

// ToLineItemResponse converts a domain line item to its response representation
func ToLineItemResponse(item *ordering.OrderLineItem) LineItemResponse {
	resp := LineItemResponse{
		ID:      item.ID,
		OrderID: item.OrderID,
	}
	if item.Product != nil {
		product := appcatalog.ToProductResponse(item.Product, 0, 0)
		resp.Product = &product
	}
	return resp
}

// ToOrderResponse converts a domain order to its response representation
func ToOrderResponse(order *ordering.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(order.LineItems))
	for i := range order.LineItems {
		items = append(items, ToLineItemResponse(&order.LineItems[i]))
	}

	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		PaymentTypeID: order.PaymentTypeID,
		Status:        string(order.Status),
		LineItems:     items,
		CreatedAt:     order.CreatedAt,
	}
}

// ToCartResponse converts the open order into the cart representation
func ToCartResponse(order *ordering.Order) CartResponse {
	return CartResponse{
		OrderResponse: ToOrderResponse(order),
		Size:          len(order.LineItems),
	}
}
