package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStoreRepository implements storefront.StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GORM store repository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store with its owner preloaded
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*storefront.Store, error) {
	var store storefront.Store
	err := r.db.WithContext(ctx).Preload("Owner.User").First(&store, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindByOwner finds the store owned by a customer
func (r *GormStoreRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*storefront.Store, error) {
	var store storefront.Store
	err := r.db.WithContext(ctx).Preload("Owner.User").First(&store, "owner_id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindAll lists all stores alphabetically
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]storefront.Store, error) {
	var stores []storefront.Store
	err := r.db.WithContext(ctx).Preload("Owner.User").Order("name ASC").Find(&stores).Error
	return stores, err
}

// ExistsByOwner checks whether a customer already has a storefront
func (r *GormStoreRepository) ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&storefront.Store{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error
	return count > 0, err
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *storefront.Store) error {
	return r.db.WithContext(ctx).Omit("Owner").Save(store).Error
}

// Ensure interface compliance
var _ storefront.StoreRepository = (*GormStoreRepository)(nil)
