package storefront

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
)

// RecommendationService handles product recommendations between customers
type RecommendationService struct {
	recommendations storefront.RecommendationRepository
	customers       identity.CustomerRepository
	products        catalog.ProductRepository
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(
	recommendations storefront.RecommendationRepository,
	customers identity.CustomerRepository,
	products catalog.ProductRepository,
) *RecommendationService {
	return &RecommendationService{
		recommendations: recommendations,
		customers:       customers,
		products:        products,
	}
}

// Recommend points another customer, addressed by username, at a
// product. Recommending a product to yourself is rejected.
func (s *RecommendationService) Recommend(ctx context.Context, recommenderID, productID uuid.UUID, req RecommendProductRequest) (*RecommendationResponse, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	receiver, err := s.customers.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "No customer with that username")
		}
		return nil, err
	}
	if receiver.ID == recommenderID {
		return nil, shared.NewDomainError("INVALID_INPUT", "You cannot recommend a product to yourself")
	}

	rec, err := storefront.NewRecommendation(recommenderID, receiver.ID, productID)
	if err != nil {
		return nil, err
	}
	if err := s.recommendations.Save(ctx, rec); err != nil {
		return nil, err
	}

	resp := ToRecommendationResponse(rec)
	return &resp, nil
}

// ListReceived returns recommendations made to the customer
func (s *RecommendationService) ListReceived(ctx context.Context, customerID uuid.UUID) ([]RecommendationResponse, error) {
	recs, err := s.recommendations.FindByReceiver(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toRecommendationResponses(recs), nil
}

// ListMade returns recommendations the customer has made
func (s *RecommendationService) ListMade(ctx context.Context, customerID uuid.UUID) ([]RecommendationResponse, error) {
	recs, err := s.recommendations.FindByRecommender(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return toRecommendationResponses(recs), nil
}

func toRecommendationResponses(recs []storefront.Recommendation) []RecommendationResponse {
	responses := make([]RecommendationResponse, 0, len(recs))
	for i := range recs {
		responses = append(responses, ToRecommendationResponse(&recs[i]))
	}
	return responses
}
