package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRatingRepository implements catalog.RatingRepository using GORM
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a new GORM rating repository
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// FindByCustomerAndProduct finds a customer's rating for a product
func (r *GormRatingRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*catalog.ProductRating, error) {
	var rating catalog.ProductRating
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Save creates or updates a rating
func (r *GormRatingRepository) Save(ctx context.Context, rating *catalog.ProductRating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

// Ensure interface compliance
var _ catalog.RatingRepository = (*GormRatingRepository)(nil)
