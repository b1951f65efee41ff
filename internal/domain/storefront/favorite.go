package storefront

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// Favorite marks a store as a favorite seller of a customer.
// The (customer, store) pair is unique.
type Favorite struct {
	shared.BaseEntity
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_customer_store" json:"customer_id"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_customer_store" json:"store_id"`
	Store      *Store    `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// TableName specifies the table name for GORM
func (Favorite) TableName() string {
	return "favorites"
}

// NewFavorite creates a favorite-seller link
func NewFavorite(customerID, storeID uuid.UUID) (*Favorite, error) {
	if customerID == uuid.Nil || storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer and store are required")
	}

	return &Favorite{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		StoreID:    storeID,
	}, nil
}
