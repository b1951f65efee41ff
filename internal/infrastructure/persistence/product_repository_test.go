package persistence

import (
	"context"
	"testing"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// sellProduct records a line item for the product on an order in the given state
func sellProduct(t *testing.T, db *gorm.DB, customerID, productID uuid.UUID, status ordering.OrderStatus) {
	t.Helper()

	order, err := ordering.NewOrder(customerID)
	require.NoError(t, err)
	if status == ordering.OrderStatusClosed {
		require.NoError(t, order.Close(uuid.New()))
	}
	require.NoError(t, db.Create(order).Error)

	item, err := ordering.NewOrderLineItem(order.ID, productID)
	require.NoError(t, err)
	require.NoError(t, db.Create(item).Error)
}

func TestGormProductRepository_FindAll(t *testing.T) {
	t.Run("filters compose with AND", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")

		seedProduct(t, db, seller.ID, "Mug", 8)
		expensive := seedProduct(t, db, seller.ID, "Sofa", 450)

		filter := shared.DefaultFilter()
		filter.Filters["min_price"] = decimal.NewFromInt(100)
		filter.Filters["seller_id"] = seller.ID

		products, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, expensive.ID, products[0].ID)
	})

	t.Run("location matches case-insensitively on a fragment", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		product := seedProduct(t, db, seller.ID, "Mug", 8)

		filter := shared.DefaultFilter()
		filter.Filters["location"] = "NASH"

		products, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, product.ID, products[0].ID)
	})

	t.Run("number_sold counts only closed orders", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		buyer := seedCustomer(t, db, "buyer")

		sold := seedProduct(t, db, seller.ID, "Popular", 10)
		carted := seedProduct(t, db, seller.ID, "Carted", 10)

		sellProduct(t, db, buyer.ID, sold.ID, ordering.OrderStatusClosed)
		sellProduct(t, db, buyer.ID, carted.ID, ordering.OrderStatusOpen)

		filter := shared.DefaultFilter()
		filter.Filters["number_sold"] = 1

		products, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, sold.ID, products[0].ID)
	})

	t.Run("unknown order column falls back to created_at", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		seedProduct(t, db, seller.ID, "Mug", 8)

		filter := shared.DefaultFilter()
		filter.OrderBy = "price; DROP TABLE products"

		products, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("limit caps the result set", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		seedProduct(t, db, seller.ID, "One", 10)
		seedProduct(t, db, seller.ID, "Two", 20)
		seedProduct(t, db, seller.ID, "Three", 30)

		filter := shared.DefaultFilter()
		filter.OrderBy = "price"
		filter.OrderDir = "asc"
		filter.Limit = 2

		products, err := repo.FindAll(context.Background(), filter)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "One", products[0].Name)
		assert.Equal(t, "Two", products[1].Name)
	})
}

func TestGormProductRepository_NumberSold(t *testing.T) {
	t.Run("items still in carts do not count as sales", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		buyer := seedCustomer(t, db, "buyer")
		product := seedProduct(t, db, seller.ID, "Lamp", 25)

		sellProduct(t, db, buyer.ID, product.ID, ordering.OrderStatusClosed)
		sellProduct(t, db, buyer.ID, product.ID, ordering.OrderStatusOpen)

		sold, err := repo.NumberSold(context.Background(), product.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), sold)
	})
}

func TestGormProductRepository_AverageRating(t *testing.T) {
	t.Run("returns the mean of all ratings", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		product := seedProduct(t, db, seller.ID, "Lamp", 25)

		for _, score := range []int{3, 5} {
			rating, err := catalog.NewProductRating(seedCustomer(t, db, uuid.NewString()[:8]).ID, product.ID, score, "")
			require.NoError(t, err)
			require.NoError(t, db.Create(rating).Error)
		}

		avg, err := repo.AverageRating(context.Background(), product.ID)

		require.NoError(t, err)
		assert.Equal(t, 4.0, avg)
	})

	t.Run("an unrated product averages zero", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")
		product := seedProduct(t, db, seller.ID, "Lamp", 25)

		avg, err := repo.AverageRating(context.Background(), product.ID)

		require.NoError(t, err)
		assert.Equal(t, 0.0, avg)
	})
}

func TestGormProductRepository_FindPricedAtMost(t *testing.T) {
	t.Run("returns products at or below the ceiling, cheapest first", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)
		seller := seedCustomer(t, db, "seller")

		seedProduct(t, db, seller.ID, "Mug", 8)
		seedProduct(t, db, seller.ID, "Exactly", 999)
		seedProduct(t, db, seller.ID, "Sofa", 1000)

		products, err := repo.FindPricedAtMost(context.Background(), decimal.NewFromInt(999))

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Mug", products[0].Name)
		assert.Equal(t, "Exactly", products[1].Name)
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deleting a missing product is not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormProductRepository(db)

		err := repo.Delete(context.Background(), uuid.New())

		assert.Equal(t, shared.ErrNotFound, err)
	})
}
