package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPaymentTypeRepository implements identity.PaymentTypeRepository using GORM
type GormPaymentTypeRepository struct {
	db *gorm.DB
}

// NewGormPaymentTypeRepository creates a new GORM payment type repository
func NewGormPaymentTypeRepository(db *gorm.DB) *GormPaymentTypeRepository {
	return &GormPaymentTypeRepository{db: db}
}

// FindByID finds a payment type by ID
func (r *GormPaymentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.PaymentType, error) {
	var paymentType identity.PaymentType
	err := r.db.WithContext(ctx).First(&paymentType, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &paymentType, nil
}

// FindByCustomer lists a customer's payment types, newest first
func (r *GormPaymentTypeRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]identity.PaymentType, error) {
	var paymentTypes []identity.PaymentType
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&paymentTypes).Error
	return paymentTypes, err
}

// Save creates or updates a payment type
func (r *GormPaymentTypeRepository) Save(ctx context.Context, paymentType *identity.PaymentType) error {
	return r.db.WithContext(ctx).Save(paymentType).Error
}

// Delete removes a payment type
func (r *GormPaymentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&identity.PaymentType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interface compliance
var _ identity.PaymentTypeRepository = (*GormPaymentTypeRepository)(nil)
