package catalog

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]Product, error)
	FindRecentByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]Product, error)
	FindPricedAtMost(ctx context.Context, ceiling decimal.Decimal) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// NumberSold counts line items for the product on closed orders
	NumberSold(ctx context.Context, productID uuid.UUID) (int64, error)
	// AverageRating returns the mean rating, 0 when unrated
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, error)
}

// CategoryRepository defines persistence operations for product categories
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductCategory, error)
	FindAll(ctx context.Context) ([]ProductCategory, error)
	Save(ctx context.Context, category *ProductCategory) error
}

// RatingRepository defines persistence operations for product ratings
type RatingRepository interface {
	FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*ProductRating, error)
	Save(ctx context.Context, rating *ProductRating) error
}

// LikeRepository defines persistence operations for product likes
type LikeRepository interface {
	FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*ProductLike, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]ProductLike, error)
	Save(ctx context.Context, like *ProductLike) error
	Delete(ctx context.Context, id uuid.UUID) error
}
