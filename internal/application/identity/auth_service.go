package identity

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/auth"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs access tokens for authenticated accounts
type TokenIssuer interface {
	GenerateToken(input auth.GenerateTokenInput) (*auth.Token, error)
}

// AuthService handles registration, login and logout
type AuthService struct {
	users     identity.UserRepository
	customers identity.CustomerRepository
	tokens    TokenIssuer
	blacklist auth.TokenBlacklist
}

// NewAuthService creates a new auth service
func NewAuthService(users identity.UserRepository, customers identity.CustomerRepository, tokens TokenIssuer, blacklist auth.TokenBlacklist) *AuthService {
	return &AuthService{
		users:     users,
		customers: customers,
		tokens:    tokens,
		blacklist: blacklist,
	}
}

// Register creates the user account and its customer profile, then
// issues a token so the client is logged in immediately
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	exists, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, req.Email, req.FirstName, req.LastName, string(hash))
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	customer, err := identity.NewCustomer(user.ID, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, err
	}

	return s.issueToken(user, customer)
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, shared.NewDomainError("UNAUTHORIZED", "Invalid username or password")
	}

	customer, err := s.customers.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueToken(user, customer)
}

// Logout revokes the presented token for the rest of its lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

func (s *AuthService) issueToken(user *identity.User, customer *identity.Customer) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(auth.GenerateTokenInput{
		UserID:     user.ID,
		CustomerID: customer.ID,
		Username:   user.Username,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:     token.AccessToken,
		ExpiresAt: token.ExpiresAt,
		User:      ToUserResponse(user, customer.ID),
	}, nil
}
