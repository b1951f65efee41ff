package storefront

import (
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// Store is a seller's storefront. Each customer owns at most one.
type Store struct {
	shared.BaseEntity
	OwnerID     uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"customer_id"`
	Owner       *identity.Customer `gorm:"foreignKey:OwnerID" json:"-"`
	Name        string             `gorm:"type:varchar(100);not null" json:"name"`
	Description string             `gorm:"type:varchar(255)" json:"description"`
}

// TableName specifies the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a storefront for a customer
func NewStore(ownerID uuid.UUID, name, description string) (*Store, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Owner is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Store name is required")
	}

	return &Store{
		BaseEntity:  shared.NewBaseEntity(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}, nil
}

// Rename updates the storefront's public details
func (s *Store) Rename(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store name is required")
	}
	s.Name = strings.TrimSpace(name)
	s.Description = strings.TrimSpace(description)
	return nil
}
