package catalog

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	// MinRating is the lowest score a customer can give
	MinRating = 0
	// MaxRating is the highest score a customer can give
	MaxRating = 5
	// MaxReviewLength bounds the optional review text
	MaxReviewLength = 255
)

// ProductRating is a customer's score for a product.
// A customer holds at most one rating per product; repeat
// submissions replace the previous score.
type ProductRating struct {
	shared.BaseEntity
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_customer_product" json:"customer_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rating_customer_product" json:"product_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Review     string    `gorm:"type:varchar(255)" json:"review"`
}

// TableName specifies the table name for GORM
func (ProductRating) TableName() string {
	return "product_ratings"
}

// NewProductRating creates a rating after validating its bounds
func NewProductRating(customerID, productID uuid.UUID, rating int, review string) (*ProductRating, error) {
	if err := validateRating(rating, review); err != nil {
		return nil, err
	}

	return &ProductRating{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		ProductID:  productID,
		Rating:     rating,
		Review:     review,
	}, nil
}

// Update replaces the score and review on a repeat submission
func (r *ProductRating) Update(rating int, review string) error {
	if err := validateRating(rating, review); err != nil {
		return err
	}
	r.Rating = rating
	r.Review = review
	return nil
}

func validateRating(rating int, review string) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("INVALID_INPUT", "Rating must be between 0 and 5")
	}
	if len(review) > MaxReviewLength {
		return shared.NewDomainError("INVALID_INPUT", "Review is too long")
	}
	return nil
}
