package identity

import (
	"context"
	"time"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentTypeService handles a customer's registered payment methods
type PaymentTypeService struct {
	paymentTypes identity.PaymentTypeRepository
}

// NewPaymentTypeService creates a new payment type service
func NewPaymentTypeService(paymentTypes identity.PaymentTypeRepository) *PaymentTypeService {
	return &PaymentTypeService{paymentTypes: paymentTypes}
}

// Create registers a payment method for the customer
func (s *PaymentTypeService) Create(ctx context.Context, customerID uuid.UUID, req CreatePaymentTypeRequest) (*PaymentTypeResponse, error) {
	expiration, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Expiration date must be YYYY-MM-DD")
	}

	paymentType, err := identity.NewPaymentType(customerID, req.MerchantName, req.AccountNumber, expiration)
	if err != nil {
		return nil, err
	}
	if err := s.paymentTypes.Save(ctx, paymentType); err != nil {
		return nil, err
	}

	resp := ToPaymentTypeResponse(paymentType)
	return &resp, nil
}

// List returns the customer's payment methods with account numbers masked
func (s *PaymentTypeService) List(ctx context.Context, customerID uuid.UUID) ([]PaymentTypeResponse, error) {
	paymentTypes, err := s.paymentTypes.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentTypeResponse, 0, len(paymentTypes))
	for i := range paymentTypes {
		responses = append(responses, ToPaymentTypeResponse(&paymentTypes[i]))
	}
	return responses, nil
}

// GetByID returns one of the customer's payment methods
func (s *PaymentTypeService) GetByID(ctx context.Context, customerID, id uuid.UUID) (*PaymentTypeResponse, error) {
	paymentType, err := s.paymentTypes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paymentType.CustomerID != customerID {
		return nil, shared.NewDomainError("FORBIDDEN", "Payment type belongs to another customer")
	}

	resp := ToPaymentTypeResponse(paymentType)
	return &resp, nil
}

// Delete removes one of the customer's payment methods
func (s *PaymentTypeService) Delete(ctx context.Context, customerID, id uuid.UUID) error {
	paymentType, err := s.paymentTypes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if paymentType.CustomerID != customerID {
		return shared.NewDomainError("FORBIDDEN", "Payment type belongs to another customer")
	}
	return s.paymentTypes.Delete(ctx, id)
}
