package identity

import (
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
)

// User is an account that can authenticate against the API
type User struct {
	shared.BaseEntity
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	FirstName    string `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string `gorm:"type:varchar(150)" json:"last_name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a pre-hashed password
func NewUser(username, email, firstName, lastName, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Email is required")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password hash is required")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		Email:        strings.TrimSpace(email),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PasswordHash: passwordHash,
	}, nil
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
