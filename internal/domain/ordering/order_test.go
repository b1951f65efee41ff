package ordering

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	customerID := uuid.New()

	order, err := NewOrder(customerID)
	require.NoError(t, err)

	assert.Equal(t, customerID, order.CustomerID)
	assert.Equal(t, OrderStatusOpen, order.Status)
	assert.Nil(t, order.PaymentTypeID)
	assert.True(t, order.IsOpen())
}

func TestNewOrder_RequiresCustomer(t *testing.T) {
	_, err := NewOrder(uuid.Nil)
	assert.Error(t, err)
}

func TestOrderClose(t *testing.T) {
	order, err := NewOrder(uuid.New())
	require.NoError(t, err)

	paymentTypeID := uuid.New()
	err = order.Close(paymentTypeID)
	require.NoError(t, err)

	assert.Equal(t, OrderStatusClosed, order.Status)
	require.NotNil(t, order.PaymentTypeID)
	assert.Equal(t, paymentTypeID, *order.PaymentTypeID)
	assert.False(t, order.IsOpen())
}

func TestOrderClose_IsTerminal(t *testing.T) {
	order, err := NewOrder(uuid.New())
	require.NoError(t, err)

	require.NoError(t, order.Close(uuid.New()))

	err = order.Close(uuid.New())
	assert.Error(t, err)
}

func TestOrderClose_RequiresPaymentType(t *testing.T) {
	order, err := NewOrder(uuid.New())
	require.NoError(t, err)

	err = order.Close(uuid.Nil)
	assert.Error(t, err)
	assert.True(t, order.IsOpen())
}

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"open to closed", OrderStatusOpen, OrderStatusClosed, true},
		{"closed to open", OrderStatusClosed, OrderStatusOpen, false},
		{"closed to closed", OrderStatusClosed, OrderStatusClosed, false},
		{"open to open", OrderStatusOpen, OrderStatusOpen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusOpen.IsValid())
	assert.True(t, OrderStatusClosed.IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
}
