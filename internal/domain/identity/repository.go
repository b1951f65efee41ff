package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Save(ctx context.Context, user *User) error
}

// CustomerRepository defines persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Customer, error)
	FindByUsername(ctx context.Context, username string) (*Customer, error)
	Save(ctx context.Context, customer *Customer) error
}

// PaymentTypeRepository defines persistence operations for payment types
type PaymentTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentType, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]PaymentType, error)
	Save(ctx context.Context, paymentType *PaymentType) error
	Delete(ctx context.Context, id uuid.UUID) error
}
