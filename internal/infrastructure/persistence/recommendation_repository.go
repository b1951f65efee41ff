package persistence

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecommendationRepository implements storefront.RecommendationRepository using GORM
type GormRecommendationRepository struct {
	db *gorm.DB
}

// NewGormRecommendationRepository creates a new GORM recommendation repository
func NewGormRecommendationRepository(db *gorm.DB) *GormRecommendationRepository {
	return &GormRecommendationRepository{db: db}
}

// FindByRecommender lists recommendations a customer has made
func (r *GormRecommendationRepository) FindByRecommender(ctx context.Context, recommenderID uuid.UUID) ([]storefront.Recommendation, error) {
	var recommendations []storefront.Recommendation
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("recommender_id = ?", recommenderID).
		Order("created_at DESC").
		Find(&recommendations).Error
	return recommendations, err
}

// FindByReceiver lists recommendations a customer has received
func (r *GormRecommendationRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]storefront.Recommendation, error) {
	var recommendations []storefront.Recommendation
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&recommendations).Error
	return recommendations, err
}

// Save creates a recommendation
func (r *GormRecommendationRepository) Save(ctx context.Context, recommendation *storefront.Recommendation) error {
	return r.db.WithContext(ctx).Save(recommendation).Error
}

// Ensure interface compliance
var _ storefront.RecommendationRepository = (*GormRecommendationRepository)(nil)
