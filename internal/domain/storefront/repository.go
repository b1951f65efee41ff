package storefront

import (
	"context"

	"github.com/google/uuid"
)

// StoreRepository defines persistence operations for stores
type StoreRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Store, error)
	FindAll(ctx context.Context) ([]Store, error)
	ExistsByOwner(ctx context.Context, ownerID uuid.UUID) (bool, error)
	Save(ctx context.Context, store *Store) error
}

// FavoriteRepository defines persistence operations for favorite sellers
type FavoriteRepository interface {
	FindByCustomerAndStore(ctx context.Context, customerID, storeID uuid.UUID) (*Favorite, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]Favorite, error)
	IsFavorite(ctx context.Context, customerID, storeID uuid.UUID) (bool, error)
	Save(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecommendationRepository defines persistence operations for recommendations
type RecommendationRepository interface {
	FindByRecommender(ctx context.Context, recommenderID uuid.UUID) ([]Recommendation, error)
	FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]Recommendation, error)
	Save(ctx context.Context, recommendation *Recommendation) error
}
