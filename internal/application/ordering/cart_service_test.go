package ordering

import (
	"context"
	"testing"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of ordering.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrCreateOpen(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, paymentTypeID *uuid.UUID) ([]ordering.Order, error) {
	args := m.Called(ctx, customerID, paymentTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus) ([]ordering.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteWithLineItems(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLineItemRepository is a mock implementation of ordering.LineItemRepository
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.OrderLineItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.OrderLineItem), args.Error(1)
}

func (m *MockLineItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ordering.OrderLineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.OrderLineItem), args.Error(1)
}

func (m *MockLineItemRepository) Save(ctx context.Context, item *ordering.OrderLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindRecentByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindPricedAtMost(ctx context.Context, ceiling decimal.Decimal) ([]catalog.Product, error) {
	args := m.Called(ctx, ceiling)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) NumberSold(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

// MockPaymentTypeRepository is a mock implementation of identity.PaymentTypeRepository
type MockPaymentTypeRepository struct {
	mock.Mock
}

func (m *MockPaymentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.PaymentType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]identity.PaymentType, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.PaymentType), args.Error(1)
}

func (m *MockPaymentTypeRepository) Save(ctx context.Context, paymentType *identity.PaymentType) error {
	args := m.Called(ctx, paymentType)
	return args.Error(0)
}

func (m *MockPaymentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCartService() (*CartService, *MockOrderRepository, *MockLineItemRepository, *MockProductRepository) {
	orders := new(MockOrderRepository)
	lineItems := new(MockLineItemRepository)
	products := new(MockProductRepository)
	service := NewCartService(orders, lineItems, products)
	return service, orders, lineItems, products
}

func cartProduct(t *testing.T) *catalog.Product {
	product, err := catalog.NewProduct(uuid.New(), nil, "Lamp", decimal.NewFromFloat(24.50), "Desk lamp", 2, "Memphis")
	require.NoError(t, err)
	return product
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("no open order means an empty cart, not an error", func(t *testing.T) {
		service, orders, _, _ := newCartService()
		customerID := uuid.New()

		orders.On("FindOpenByCustomer", mock.Anything, customerID).Return(nil, shared.ErrNotFound)

		cart, err := service.GetCart(context.Background(), customerID)

		assert.NoError(t, err)
		require.NotNil(t, cart)
		assert.Equal(t, 0, cart.Size)
		assert.Empty(t, cart.LineItems)
	})

	t.Run("size counts line item rows", func(t *testing.T) {
		service, orders, _, _ := newCartService()
		customerID := uuid.New()
		product := cartProduct(t)

		order, err := ordering.NewOrder(customerID)
		require.NoError(t, err)
		for i := 0; i < 2; i++ {
			item, err := ordering.NewOrderLineItem(order.ID, product.ID)
			require.NoError(t, err)
			item.Product = product
			order.LineItems = append(order.LineItems, *item)
		}

		orders.On("FindOpenByCustomer", mock.Anything, customerID).Return(order, nil)

		cart, err := service.GetCart(context.Background(), customerID)

		assert.NoError(t, err)
		require.NotNil(t, cart)
		assert.Equal(t, 2, cart.Size)
		assert.Equal(t, "open", cart.Status)
		require.Len(t, cart.LineItems, 2)
		assert.Equal(t, "24.50", cart.LineItems[0].Product.Price)
	})
}

func TestCartService_AddProduct(t *testing.T) {
	t.Run("creates the open order on first add", func(t *testing.T) {
		service, orders, lineItems, products := newCartService()
		customerID := uuid.New()
		product := cartProduct(t)

		order, err := ordering.NewOrder(customerID)
		require.NoError(t, err)

		products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		orders.On("GetOrCreateOpen", mock.Anything, customerID).Return(order, nil)
		lineItems.On("Save", mock.Anything, mock.AnythingOfType("*ordering.OrderLineItem")).Return(nil)
		lineItems.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(
			&ordering.OrderLineItem{BaseEntity: shared.NewBaseEntity(), OrderID: order.ID, ProductID: product.ID, Product: product}, nil)

		item, err := service.AddProduct(context.Background(), customerID, AddToCartRequest{ProductID: product.ID.String()})

		assert.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, order.ID, item.OrderID)
		require.NotNil(t, item.Product)
		assert.Equal(t, product.ID, item.Product.ID)
		orders.AssertExpectations(t)
		lineItems.AssertExpectations(t)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		service, orders, _, products := newCartService()
		productID := uuid.New()

		products.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		item, err := service.AddProduct(context.Background(), uuid.New(), AddToCartRequest{ProductID: productID.String()})

		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		orders.AssertNotCalled(t, "GetOrCreateOpen", mock.Anything, mock.Anything)
	})

	t.Run("malformed product ID is invalid input", func(t *testing.T) {
		service, _, _, _ := newCartService()

		item, err := service.AddProduct(context.Background(), uuid.New(), AddToCartRequest{ProductID: "nope"})

		assert.Nil(t, item)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestCartService_RemoveLineItem(t *testing.T) {
	t.Run("removes an item from the customer's open order", func(t *testing.T) {
		service, orders, lineItems, _ := newCartService()
		customerID := uuid.New()

		order, err := ordering.NewOrder(customerID)
		require.NoError(t, err)
		item, err := ordering.NewOrderLineItem(order.ID, uuid.New())
		require.NoError(t, err)

		lineItems.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)
		lineItems.On("Delete", mock.Anything, item.ID).Return(nil)

		err = service.RemoveLineItem(context.Background(), customerID, item.ID)

		assert.NoError(t, err)
		lineItems.AssertExpectations(t)
	})

	t.Run("another customer's item is forbidden", func(t *testing.T) {
		service, orders, lineItems, _ := newCartService()

		order, err := ordering.NewOrder(uuid.New())
		require.NoError(t, err)
		item, err := ordering.NewOrderLineItem(order.ID, uuid.New())
		require.NoError(t, err)

		lineItems.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		err = service.RemoveLineItem(context.Background(), uuid.New(), item.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FORBIDDEN", domainErr.Code)
		lineItems.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("items on completed orders cannot be removed", func(t *testing.T) {
		service, orders, lineItems, _ := newCartService()
		customerID := uuid.New()

		order, err := ordering.NewOrder(customerID)
		require.NoError(t, err)
		require.NoError(t, order.Close(uuid.New()))
		item, err := ordering.NewOrderLineItem(order.ID, uuid.New())
		require.NoError(t, err)

		lineItems.On("FindByID", mock.Anything, item.ID).Return(item, nil)
		orders.On("FindByID", mock.Anything, order.ID).Return(order, nil)

		err = service.RemoveLineItem(context.Background(), customerID, item.ID)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	t.Run("deletes the open order with its line items", func(t *testing.T) {
		service, orders, _, _ := newCartService()
		customerID := uuid.New()

		order, err := ordering.NewOrder(customerID)
		require.NoError(t, err)

		orders.On("FindOpenByCustomer", mock.Anything, customerID).Return(order, nil)
		orders.On("DeleteWithLineItems", mock.Anything, order.ID).Return(nil)

		err = service.ClearCart(context.Background(), customerID)

		assert.NoError(t, err)
		orders.AssertExpectations(t)
	})

	t.Run("clearing an empty cart is not found", func(t *testing.T) {
		service, orders, _, _ := newCartService()
		customerID := uuid.New()

		orders.On("FindOpenByCustomer", mock.Anything, customerID).Return(nil, shared.ErrNotFound)

		err := service.ClearCart(context.Background(), customerID)

		assert.Equal(t, shared.ErrNotFound, err)
	})
}
