package storefront

import (
	"context"
	"errors"

	appcatalog "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
)

// StoreService handles seller storefronts
type StoreService struct {
	stores    storefront.StoreRepository
	favorites storefront.FavoriteRepository
	products  catalog.ProductRepository
}

// NewStoreService creates a new store service
func NewStoreService(
	stores storefront.StoreRepository,
	favorites storefront.FavoriteRepository,
	products catalog.ProductRepository,
) *StoreService {
	return &StoreService{
		stores:    stores,
		favorites: favorites,
		products:  products,
	}
}

// Create opens a storefront for the customer. A second store for the
// same owner is a conflict.
func (s *StoreService) Create(ctx context.Context, ownerID uuid.UUID, req CreateStoreRequest) (*StoreResponse, error) {
	exists, err := s.stores.ExistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer already owns a store")
	}

	store, err := storefront.NewStore(ownerID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}

	resp := ToStoreResponse(store)
	return &resp, nil
}

// List returns every storefront
func (s *StoreService) List(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		responses = append(responses, ToStoreResponse(&stores[i]))
	}
	return responses, nil
}

// GetByID returns a storefront with its product listings. viewerID is
// nil for unauthenticated requests.
func (s *StoreService) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*StoreDetailResponse, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	filter.Filters["seller_id"] = store.OwnerID
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	productResponses := make([]appcatalog.ProductResponse, 0, len(products))
	for i := range products {
		productResponses = append(productResponses, appcatalog.ToProductResponse(&products[i], 0, 0))
	}

	detail := &StoreDetailResponse{
		StoreResponse: ToStoreResponse(store),
		Products:      productResponses,
	}

	if viewerID != nil {
		favorite, err := s.favorites.IsFavorite(ctx, *viewerID, store.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		detail.IsFavorite = favorite
	}

	return detail, nil
}

// Update renames the customer's storefront
func (s *StoreService) Update(ctx context.Context, ownerID, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	store, err := s.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store.OwnerID != ownerID {
		return nil, shared.NewDomainError("FORBIDDEN", "Store belongs to another customer")
	}

	if err := store.Rename(req.Name, req.Description); err != nil {
		return nil, err
	}
	if err := s.stores.Save(ctx, store); err != nil {
		return nil, err
	}

	resp := ToStoreResponse(store)
	return &resp, nil
}
