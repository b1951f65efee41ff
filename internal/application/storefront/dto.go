package storefront

import (
	"time"

	appcatalog "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
)

// CreateStoreRequest is the payload for opening a storefront
type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateStoreRequest is the payload for renaming a storefront
type UpdateStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// FavoriteSellerRequest identifies the store to favorite
type FavoriteSellerRequest struct {
	StoreID string `json:"store_id" binding:"required,uuid"`
}

// RecommendProductRequest names the customer to receive a recommendation
type RecommendProductRequest struct {
	Username string `json:"username" binding:"required"`
}

// StoreResponse represents a storefront
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"customer_id"`
	OwnerName   string    `json:"seller_name,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_date"`
}

// StoreDetailResponse adds the store's product listings and whether
// the viewer has favorited it
type StoreDetailResponse struct {
	StoreResponse
	Products   []appcatalog.ProductResponse `json:"products"`
	IsFavorite bool                         `json:"is_favorite"`
}

// FavoriteResponse represents a favorite-seller link
type FavoriteResponse struct {
	ID         uuid.UUID     `json:"id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	Store      StoreResponse `json:"store"`
}

// RecommendationResponse represents a product recommendation
type RecommendationResponse struct {
	ID            uuid.UUID                   `json:"id"`
	RecommenderID uuid.UUID                   `json:"recommender_id"`
	ReceiverID    uuid.UUID                   `json:"customer_id"`
	Product       *appcatalog.ProductResponse `json:"product,omitempty"`
	CreatedAt     time.Time                   `json:"created_date"`
}

// ToStoreResponse converts a store to its response representation
func ToStoreResponse(store *storefront.Store) StoreResponse {
	resp := StoreResponse{
		ID:          store.ID,
		OwnerID:     store.OwnerID,
		Name:        store.Name,
		Description: store.Description,
		CreatedAt:   store.CreatedAt,
	}
	if store.Owner != nil && store.Owner.User != nil {
		resp.OwnerName = store.Owner.User.FullName()
	}
	return resp
}

// ToFavoriteResponse converts a favorite-seller link to its response
func ToFavoriteResponse(favorite *storefront.Favorite) FavoriteResponse {
	resp := FavoriteResponse{
		ID:         favorite.ID,
		CustomerID: favorite.CustomerID,
	}
	if favorite.Store != nil {
		resp.Store = ToStoreResponse(favorite.Store)
	}
	return resp
}

// ToRecommendationResponse converts a recommendation to its response
func ToRecommendationResponse(rec *storefront.Recommendation) RecommendationResponse {
	resp := RecommendationResponse{
		ID:            rec.ID,
		RecommenderID: rec.RecommenderID,
		ReceiverID:    rec.ReceiverID,
		CreatedAt:     rec.CreatedAt,
	}
	if rec.Product != nil {
		product := appcatalog.ToProductResponse(rec.Product, 0, 0)
		resp.Product = &product
	}
	return resp
}
