package identity

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// Customer is the marketplace profile attached to a user account.
// Every buyer and seller acts through a customer.
type Customer struct {
	shared.BaseEntity
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User    *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Phone   string    `gorm:"type:varchar(55)" json:"phone_number"`
	Address string    `gorm:"type:varchar(255)" json:"address"`
}

// TableName specifies the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer profile for a user
func NewCustomer(userID uuid.UUID, phone, address string) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID is required")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Phone:      phone,
		Address:    address,
	}, nil
}
