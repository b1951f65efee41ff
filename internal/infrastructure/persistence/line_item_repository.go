package persistence

import (
	"context"
	"errors"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLineItemRepository implements ordering.LineItemRepository using GORM
type GormLineItemRepository struct {
	db *gorm.DB
}

// NewGormLineItemRepository creates a new GORM line item repository
func NewGormLineItemRepository(db *gorm.DB) *GormLineItemRepository {
	return &GormLineItemRepository{db: db}
}

// FindByID finds a line item with its product preloaded
func (r *GormLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.OrderLineItem, error) {
	var item ordering.OrderLineItem
	err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByOrder lists an order's line items in insertion order
func (r *GormLineItemRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]ordering.OrderLineItem, error) {
	var items []ordering.OrderLineItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// Save creates a line item
func (r *GormLineItemRepository) Save(ctx context.Context, item *ordering.OrderLineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a line item
func (r *GormLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.OrderLineItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure interface compliance
var _ ordering.LineItemRepository = (*GormLineItemRepository)(nil)
