package catalog

import (
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
)

// ProductCategory groups products for browsing
type ProductCategory struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(55);not null" json:"name"`
}

// TableName specifies the table name for GORM
func (ProductCategory) TableName() string {
	return "product_categories"
}

// NewProductCategory creates a new category
func NewProductCategory(name string) (*ProductCategory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Category name is required")
	}

	return &ProductCategory{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
	}, nil
}
