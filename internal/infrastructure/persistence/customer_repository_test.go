package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCustomerRepository creates a GormCustomerRepository with a mocked SQL connection
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func TestGormCustomerRepository_FindByID(t *testing.T) {
	t.Run("finds a customer and preloads the user", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		customerRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "phone", "address"}).
			AddRow(customerID, now, now, userID, "615-555-0100", "100 Main St")

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnRows(customerRows)

		userRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "username", "email", "first_name", "last_name", "password_hash"}).
			AddRow(userID, now, now, "meg", "meg@example.com", "Meg", "Ducharme", "hash")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(userID).
			WillReturnRows(userRows)

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, customerID, customer.ID)
		require.NotNil(t, customer.User)
		assert.Equal(t, "meg", customer.User.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for a missing customer", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "customers" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(customerID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByID(context.Background(), customerID)

		assert.Error(t, err)
		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCustomerRepository_FindByUsername(t *testing.T) {
	t.Run("resolves a customer through the user's username", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		customerID := uuid.New()
		userID := uuid.New()
		now := time.Now()

		customerRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "user_id", "phone", "address"}).
			AddRow(customerID, now, now, userID, "", "")

		mock.ExpectQuery(`SELECT .* FROM "customers" JOIN users ON users\.id = customers\.user_id WHERE users\.username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("meg", 1).
			WillReturnRows(customerRows)

		userRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "username", "email", "first_name", "last_name", "password_hash"}).
			AddRow(userID, now, now, "meg", "meg@example.com", "Meg", "Ducharme", "hash")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
			WithArgs(userID).
			WillReturnRows(userRows)

		customer, err := repo.FindByUsername(context.Background(), "meg")

		assert.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, customerID, customer.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for an unknown username", func(t *testing.T) {
		repo, mock, mockDB := newMockCustomerRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT .* FROM "customers" JOIN users ON users\.id = customers\.user_id WHERE users\.username = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		customer, err := repo.FindByUsername(context.Background(), "ghost")

		assert.Nil(t, customer)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
