package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFavoriteRepository implements storefront.FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GORM favorite repository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// FindByCustomerAndStore finds a favorite-seller link
func (r *GormFavoriteRepository) FindByCustomerAndStore(ctx context.Context, customerID, storeID uuid.UUID) (*storefront.Favorite, error) {
	var favorite storefront.Favorite
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND store_id = ?", customerID, storeID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// FindByCustomer lists a customer's favorite sellers
func (r *GormFavoriteRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]storefront.Favorite, error) {
	var favorites []storefront.Favorite
	err := r.db.WithContext(ctx).
		Preload("Store.Owner.User").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// IsFavorite checks whether a customer has favorited a store
func (r *GormFavoriteRepository) IsFavorite(ctx context.Context, customerID, storeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&storefront.Favorite{}).
		Where("customer_id = ? AND store_id = ?", customerID, storeID).
		Count(&count).Error
	return count > 0, err
}

// Save creates a favorite
func (r *GormFavoriteRepository) Save(ctx context.Context, favorite *storefront.Favorite) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

// Delete removes a favorite
func (r *GormFavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&storefront.Favorite{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interface compliance
var _ storefront.FavoriteRepository = (*GormFavoriteRepository)(nil)
