package auth

import (
	"testing"
	"time"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-that-is-long-enough",
		AccessTokenExpiration: expiration,
		Issuer:                "bangazon-api",
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	t.Run("issues a bearer token carrying the customer identity", func(t *testing.T) {
		service := newTestJWTService(time.Hour)
		userID := uuid.New()
		customerID := uuid.New()

		token, err := service.GenerateToken(GenerateTokenInput{
			UserID:     userID,
			CustomerID: customerID,
			Username:   "meg",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "Bearer", token.TokenType)
		assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

		claims, err := service.ValidateAccessToken(token.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, customerID.String(), claims.CustomerID)
		assert.Equal(t, "meg", claims.Username)
		assert.NotEmpty(t, claims.ID)
	})
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		issuer := newTestJWTService(time.Hour)
		token, err := issuer.GenerateToken(GenerateTokenInput{UserID: uuid.New(), CustomerID: uuid.New(), Username: "meg"})
		require.NoError(t, err)

		verifier := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret",
			AccessTokenExpiration: time.Hour,
			Issuer:                "bangazon-api",
		})

		claims, err := verifier.ValidateAccessToken(token.AccessToken)

		assert.Nil(t, claims)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		service := newTestJWTService(-time.Minute)
		token, err := service.GenerateToken(GenerateTokenInput{UserID: uuid.New(), CustomerID: uuid.New(), Username: "meg"})
		require.NoError(t, err)

		claims, err := service.ValidateAccessToken(token.AccessToken)

		assert.Nil(t, claims)
		assert.Equal(t, ErrExpiredToken, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		service := newTestJWTService(time.Hour)

		claims, err := service.ValidateAccessToken("not.a.token")

		assert.Nil(t, claims)
		assert.Equal(t, ErrInvalidToken, err)
	})
}

func TestClaims_Accessors(t *testing.T) {
	t.Run("parses the embedded identifiers", func(t *testing.T) {
		service := newTestJWTService(time.Hour)
		userID := uuid.New()
		customerID := uuid.New()

		token, err := service.GenerateToken(GenerateTokenInput{UserID: userID, CustomerID: customerID, Username: "meg"})
		require.NoError(t, err)
		claims, err := service.ValidateAccessToken(token.AccessToken)
		require.NoError(t, err)

		gotUser, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)

		gotCustomer, err := claims.GetCustomerUUID()
		require.NoError(t, err)
		assert.Equal(t, customerID, gotCustomer)

		ttl := claims.GetRemainingTTL()
		assert.Greater(t, ttl, 55*time.Minute)
		assert.LessOrEqual(t, ttl, time.Hour)
	})
}
