package storefront

import (
	"context"
	"errors"

	appidentity "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
)

// ProfileResponse aggregates everything a customer sees on their
// profile page in a single payload
type ProfileResponse struct {
	ID             uuid.UUID                         `json:"id"`
	Username       string                            `json:"username"`
	Email          string                            `json:"email"`
	FirstName      string                            `json:"first_name"`
	LastName       string                            `json:"last_name"`
	Phone          string                            `json:"phone_number"`
	Address        string                            `json:"address"`
	Store          *StoreResponse                    `json:"store"`
	PaymentTypes   []appidentity.PaymentTypeResponse `json:"payment_types"`
	FavoriteStores []FavoriteResponse                `json:"favorite_sellers"`
	Recommends     []RecommendationResponse          `json:"recommends"`
	RecommendedBy  []RecommendationResponse          `json:"recommended_by"`
}

// ProfileService assembles the customer's profile view
type ProfileService struct {
	customers       identity.CustomerRepository
	paymentTypes    identity.PaymentTypeRepository
	stores          storefront.StoreRepository
	favorites       storefront.FavoriteRepository
	recommendations storefront.RecommendationRepository
}

// NewProfileService creates a new profile service
func NewProfileService(
	customers identity.CustomerRepository,
	paymentTypes identity.PaymentTypeRepository,
	stores storefront.StoreRepository,
	favorites storefront.FavoriteRepository,
	recommendations storefront.RecommendationRepository,
) *ProfileService {
	return &ProfileService{
		customers:       customers,
		paymentTypes:    paymentTypes,
		stores:          stores,
		favorites:       favorites,
		recommendations: recommendations,
	}
}

// GetProfile returns the customer's aggregated profile
func (s *ProfileService) GetProfile(ctx context.Context, customerID uuid.UUID) (*ProfileResponse, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.User == nil {
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Customer has no user account")
	}

	profile := &ProfileResponse{
		ID:        customer.ID,
		Username:  customer.User.Username,
		Email:     customer.User.Email,
		FirstName: customer.User.FirstName,
		LastName:  customer.User.LastName,
		Phone:     customer.Phone,
		Address:   customer.Address,
	}

	store, err := s.stores.FindByOwner(ctx, customerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if store != nil {
		resp := ToStoreResponse(store)
		profile.Store = &resp
	}

	paymentTypes, err := s.paymentTypes.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	profile.PaymentTypes = make([]appidentity.PaymentTypeResponse, 0, len(paymentTypes))
	for i := range paymentTypes {
		profile.PaymentTypes = append(profile.PaymentTypes, appidentity.ToPaymentTypeResponse(&paymentTypes[i]))
	}

	favorites, err := s.favorites.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	profile.FavoriteStores = make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		profile.FavoriteStores = append(profile.FavoriteStores, ToFavoriteResponse(&favorites[i]))
	}

	made, err := s.recommendations.FindByRecommender(ctx, customerID)
	if err != nil {
		return nil, err
	}
	profile.Recommends = toRecommendationResponses(made)

	received, err := s.recommendations.FindByReceiver(ctx, customerID)
	if err != nil {
		return nil, err
	}
	profile.RecommendedBy = toRecommendationResponses(received)

	return profile, nil
}
