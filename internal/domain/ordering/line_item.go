package ordering

import (
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderLineItem joins a product to an order. Adding the same product
// twice produces two rows; quantities are never merged.
type OrderLineItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID        `gorm:"type:uuid;index;not null" json:"order_id"`
	ProductID uuid.UUID        `gorm:"type:uuid;index;not null" json:"product_id"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for GORM
func (OrderLineItem) TableName() string {
	return "order_line_items"
}

// NewOrderLineItem creates a line item for an order
func NewOrderLineItem(orderID, productID uuid.UUID) (*OrderLineItem, error) {
	if orderID == uuid.Nil || productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order and product are required")
	}

	return &OrderLineItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		ProductID:  productID,
	}, nil
}
