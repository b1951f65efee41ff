package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements identity.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID with the user preloaded
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Customer, error) {
	var customer identity.Customer
	err := r.db.WithContext(ctx).Preload("User").First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByUserID finds the customer profile for a user account
func (r *GormCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Customer, error) {
	var customer identity.Customer
	err := r.db.WithContext(ctx).Preload("User").First(&customer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindByUsername finds a customer through the owning user's username
func (r *GormCustomerRepository) FindByUsername(ctx context.Context, username string) (*identity.Customer, error) {
	var customer identity.Customer
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = customers.user_id").
		Where("users.username = ?", username).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *identity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Ensure interface compliance
var _ identity.CustomerRepository = (*GormCustomerRepository)(nil)
