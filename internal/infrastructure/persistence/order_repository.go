package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ordering.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order with line items and their products preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	err := r.db.WithContext(ctx).
		Preload("LineItems.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindOpenByCustomer returns the customer's open order with line items preloaded
func (r *GormOrderRepository) FindOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	err := r.db.WithContext(ctx).
		Preload("LineItems.Product").
		Where("customer_id = ? AND status = ?", customerID, ordering.OrderStatusOpen).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrCreateOpen resolves the customer's open order, creating one when
// absent. Concurrent creates are arbitrated by the partial unique index
// on (customer_id) WHERE status = 'open': the insert carries ON
// CONFLICT DO NOTHING, so the losing request sees zero rows affected
// and reads the winner's order instead of surfacing the violation.
func (r *GormOrderRepository) GetOrCreateOpen(ctx context.Context, customerID uuid.UUID) (*ordering.Order, error) {
	var existing ordering.Order
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, ordering.OrderStatusOpen).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created, derr := ordering.NewOrder(customerID)
	if derr != nil {
		return nil, derr
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(created)
	if result.Error != nil {
		return nil, result.Error
	}

	// Zero rows affected means a concurrent request won the create
	if result.RowsAffected == 0 {
		var raced ordering.Order
		if err := r.db.WithContext(ctx).
			Where("customer_id = ? AND status = ?", customerID, ordering.OrderStatusOpen).
			First(&raced).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, shared.ErrNotFound
			}
			return nil, err
		}
		return &raced, nil
	}

	return created, nil
}

// FindByCustomer lists a customer's orders, optionally filtered by payment type
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, paymentTypeID *uuid.UUID) ([]ordering.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("LineItems.Product").
		Where("customer_id = ?", customerID)
	if paymentTypeID != nil {
		query = query.Where("payment_type_id = ?", *paymentTypeID)
	}

	var orders []ordering.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindByStatus lists all orders in a given state, oldest first
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus) ([]ordering.Order, error) {
	var orders []ordering.Order
	err := r.db.WithContext(ctx).
		Preload("LineItems.Product").
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// Save creates or updates an order
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Omit("LineItems").Save(order).Error
}

// DeleteWithLineItems removes the order's line items first, then the order
func (r *GormOrderRepository) DeleteWithLineItems(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ordering.OrderLineItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure interface compliance
var _ ordering.OrderRepository = (*GormOrderRepository)(nil)
