package storefront

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
)

// FavoriteService handles favorite-seller links
type FavoriteService struct {
	favorites storefront.FavoriteRepository
	stores    storefront.StoreRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favorites storefront.FavoriteRepository, stores storefront.StoreRepository) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		stores:    stores,
	}
}

// Favorite marks a store as one of the customer's favorite sellers.
// Favoriting the same store twice is a conflict. A customer cannot
// favorite their own store.
func (s *FavoriteService) Favorite(ctx context.Context, customerID uuid.UUID, req FavoriteSellerRequest) (*FavoriteResponse, error) {
	storeID, err := uuid.Parse(req.StoreID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid store ID")
	}

	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID == customerID {
		return nil, shared.NewDomainError("INVALID_INPUT", "You cannot favorite your own store")
	}

	exists, err := s.favorites.IsFavorite(ctx, customerID, storeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Store is already a favorite")
	}

	favorite, err := storefront.NewFavorite(customerID, storeID)
	if err != nil {
		return nil, err
	}
	if err := s.favorites.Save(ctx, favorite); err != nil {
		return nil, err
	}

	saved, err := s.favorites.FindByCustomerAndStore(ctx, customerID, storeID)
	if err != nil {
		return nil, err
	}

	resp := ToFavoriteResponse(saved)
	return &resp, nil
}

// Unfavorite removes a favorite-seller link; removing one that does
// not exist is not found
func (s *FavoriteService) Unfavorite(ctx context.Context, customerID, storeID uuid.UUID) error {
	favorite, err := s.favorites.FindByCustomerAndStore(ctx, customerID, storeID)
	if err != nil {
		return err
	}
	return s.favorites.Delete(ctx, favorite.ID)
}

// List returns the customer's favorite sellers
func (s *FavoriteService) List(ctx context.Context, customerID uuid.UUID) ([]FavoriteResponse, error) {
	favorites, err := s.favorites.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, ToFavoriteResponse(&favorites[i]))
	}
	return responses, nil
}
