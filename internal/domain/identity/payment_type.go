package identity

import (
	"strings"
	"time"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentType is a payment method registered by a customer
type PaymentType struct {
	shared.BaseEntity
	CustomerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer       *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	MerchantName   string    `gorm:"type:varchar(25);not null" json:"merchant_name"`
	AccountNumber  string    `gorm:"type:varchar(25);not null" json:"-"`
	ExpirationDate time.Time `gorm:"not null" json:"expiration_date"`
}

// TableName specifies the table name for GORM
func (PaymentType) TableName() string {
	return "payment_types"
}

// NewPaymentType creates a payment type for a customer
func NewPaymentType(customerID uuid.UUID, merchantName, accountNumber string, expirationDate time.Time) (*PaymentType, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID is required")
	}
	if strings.TrimSpace(merchantName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Merchant name is required")
	}
	if strings.TrimSpace(accountNumber) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Account number is required")
	}

	return &PaymentType{
		BaseEntity:     shared.NewBaseEntity(),
		CustomerID:     customerID,
		MerchantName:   strings.TrimSpace(merchantName),
		AccountNumber:  strings.TrimSpace(accountNumber),
		ExpirationDate: expirationDate,
	}, nil
}

// ObscuredAccountNumber masks all but the last four digits
func (p *PaymentType) ObscuredAccountNumber() string {
	if len(p.AccountNumber) <= 4 {
		return p.AccountNumber
	}
	return strings.Repeat("*", len(p.AccountNumber)-4) + p.AccountNumber[len(p.AccountNumber)-4:]
}
