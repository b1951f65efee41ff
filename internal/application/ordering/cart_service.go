package ordering

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// CartService handles the customer's open order
type CartService struct {
	orders    ordering.OrderRepository
	lineItems ordering.LineItemRepository
	products  catalog.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(
	orders ordering.OrderRepository,
	lineItems ordering.LineItemRepository,
	products catalog.ProductRepository,
) *CartService {
	return &CartService{
		orders:    orders,
		lineItems: lineItems,
		products:  products,
	}
}

// GetCart returns the customer's open order with its line items. When
// no open order exists the cart is simply empty, not an error.
func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	order, err := s.orders.FindOpenByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &CartResponse{
				OrderResponse: OrderResponse{LineItems: []LineItemResponse{}},
				Size:          0,
			}, nil
		}
		return nil, err
	}

	resp := ToCartResponse(order)
	return &resp, nil
}

// AddProduct places a product in the cart, creating the open order if
// needed. Adding the same product again produces another line item.
func (s *CartService) AddProduct(ctx context.Context, customerID uuid.UUID, req AddToCartRequest) (*LineItemResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid product ID")
	}

	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrCreateOpen(ctx, customerID)
	if err != nil {
		return nil, err
	}

	item, err := ordering.NewOrderLineItem(order.ID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.lineItems.Save(ctx, item); err != nil {
		return nil, err
	}

	saved, err := s.lineItems.FindByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	resp := ToLineItemResponse(saved)
	return &resp, nil
}

// RemoveLineItem deletes a single line item from the customer's open
// order. Items on closed orders or other customers' orders cannot be
// removed.
func (s *CartService) RemoveLineItem(ctx context.Context, customerID, lineItemID uuid.UUID) error {
	item, err := s.lineItems.FindByID(ctx, lineItemID)
	if err != nil {
		return err
	}

	order, err := s.orders.FindByID(ctx, item.OrderID)
	if err != nil {
		return err
	}
	if order.CustomerID != customerID {
		return shared.NewDomainError("FORBIDDEN", "Line item belongs to another customer")
	}
	if !order.IsOpen() {
		return shared.NewDomainError("INVALID_STATE", "Completed orders cannot be changed")
	}

	return s.lineItems.Delete(ctx, lineItemID)
}

// ClearCart deletes the customer's open order along with every line
// item on it
func (s *CartService) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	order, err := s.orders.FindOpenByCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	return s.orders.DeleteWithLineItems(ctx, order.ID)
}
