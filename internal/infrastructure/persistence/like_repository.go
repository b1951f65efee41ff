package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLikeRepository implements catalog.LikeRepository using GORM
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GORM like repository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

// FindByCustomerAndProduct finds a customer's like for a product
func (r *GormLikeRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*catalog.ProductLike, error) {
	var like catalog.ProductLike
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &like, nil
}

// FindByCustomer lists a customer's liked products, newest first
func (r *GormLikeRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]catalog.ProductLike, error) {
	var likes []catalog.ProductLike
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

// Save creates a like
func (r *GormLikeRepository) Save(ctx context.Context, like *catalog.ProductLike) error {
	return r.db.WithContext(ctx).Save(like).Error
}

// Delete removes a like
func (r *GormLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductLike{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interface compliance
var _ catalog.LikeRepository = (*GormLikeRepository)(nil)
