package catalog

import (
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProductPrice is the highest price a product may be listed at
var MaxProductPrice = decimal.NewFromInt(17500)

// Product is an item listed for sale by a customer
type Product struct {
	shared.BaseEntity
	SellerID    uuid.UUID        `gorm:"type:uuid;index;not null" json:"customer_id"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid;index" json:"category_id"`
	Category    *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Name        string           `gorm:"type:varchar(50);not null" json:"name"`
	Price       decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string           `gorm:"type:varchar(255);not null" json:"description"`
	Quantity    int              `gorm:"not null" json:"quantity"`
	Location    string           `gorm:"type:varchar(50)" json:"location"`
	ImagePath   string           `gorm:"type:varchar(255)" json:"image_path"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product listing
func NewProduct(sellerID uuid.UUID, categoryID *uuid.UUID, name string, price decimal.Decimal, description string, quantity int, location string) (*Product, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seller is required")
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Description is required")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity cannot be negative")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		SellerID:    sellerID,
		CategoryID:  categoryID,
		Name:        strings.TrimSpace(name),
		Price:       price,
		Description: strings.TrimSpace(description),
		Quantity:    quantity,
		Location:    strings.TrimSpace(location),
	}, nil
}

// UpdateListing replaces the mutable listing fields
func (p *Product) UpdateListing(name string, price decimal.Decimal, description string, quantity int, location string, categoryID *uuid.UUID) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Price = price
	p.Description = strings.TrimSpace(description)
	p.Quantity = quantity
	p.Location = strings.TrimSpace(location)
	p.CategoryID = categoryID
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Price must be positive")
	}
	if price.GreaterThan(MaxProductPrice) {
		return shared.NewDomainError("INVALID_INPUT", "Price may not exceed $17,500")
	}
	return nil
}
