package identity

import (
	"time"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/google/uuid"
)

// RegisterRequest is the payload for creating a new account
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Phone     string `json:"phone_number" binding:"max=55"`
	Address   string `json:"address" binding:"max=255"`
}

// LoginRequest is the payload for authenticating
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token alongside the account
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public representation of an account
type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
}

// CreatePaymentTypeRequest is the payload for registering a payment method
type CreatePaymentTypeRequest struct {
	MerchantName   string `json:"merchant_name" binding:"required,max=25"`
	AccountNumber  string `json:"account_number" binding:"required,max=25"`
	ExpirationDate string `json:"expiration_date" binding:"required,datetime=2006-01-02"`
}

// PaymentTypeResponse represents a payment method with the account
// number masked down to its last four digits
type PaymentTypeResponse struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	MerchantName   string    `json:"merchant_name"`
	AccountNumber  string    `json:"account_number"`
	ExpirationDate time.Time `json:"expiration_date"`
	CreatedAt      time.Time `json:"created_date"`
}

// ToUserResponse converts a user and its customer profile to a response
func ToUserResponse(user *identity.User, customerID uuid.UUID) UserResponse {
	return UserResponse{
		ID:         user.ID,
		CustomerID: customerID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
	}
}

// ToPaymentTypeResponse converts a payment type to its masked response
func ToPaymentTypeResponse(p *identity.PaymentType) PaymentTypeResponse {
	return PaymentTypeResponse{
		ID:             p.ID,
		CustomerID:     p.CustomerID,
		MerchantName:   p.MerchantName,
		AccountNumber:  p.ObscuredAccountNumber(),
		ExpirationDate: p.ExpirationDate,
		CreatedAt:      p.CreatedAt,
	}
}
