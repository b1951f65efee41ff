package catalog

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductLike marks a product as liked by a customer.
// The (customer, product) pair is unique.
type ProductLike struct {
	shared.BaseEntity
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_customer_product" json:"customer_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_like_customer_product" json:"product_id"`
	Product    *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for GORM
func (ProductLike) TableName() string {
	return "product_likes"
}

// NewProductLike creates a like for a product
func NewProductLike(customerID, productID uuid.UUID) (*ProductLike, error) {
	if customerID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer and product are required")
	}

	return &ProductLike{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		ProductID:  productID,
	}, nil
}
