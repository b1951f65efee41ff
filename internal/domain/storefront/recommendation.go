package storefront

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// Recommendation records one customer pointing another at a product
type Recommendation struct {
	shared.BaseEntity
	RecommenderID uuid.UUID        `gorm:"type:uuid;index;not null" json:"recommender_id"`
	ReceiverID    uuid.UUID        `gorm:"type:uuid;index;not null" json:"customer_id"`
	ProductID     uuid.UUID        `gorm:"type:uuid;index;not null" json:"product_id"`
	Product       *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for GORM
func (Recommendation) TableName() string {
	return "recommendations"
}

// NewRecommendation creates a product recommendation between customers
func NewRecommendation(recommenderID, receiverID, productID uuid.UUID) (*Recommendation, error) {
	if recommenderID == uuid.Nil || receiverID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Recommender, receiver and product are required")
	}

	return &Recommendation{
		BaseEntity:    shared.NewBaseEntity(),
		RecommenderID: recommenderID,
		ReceiverID:    receiverID,
		ProductID:     productID,
	}, nil
}
