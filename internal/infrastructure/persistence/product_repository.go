package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// soldCountSubquery counts a product's line items on completed orders
const soldCountSubquery = "(SELECT COUNT(*) FROM order_line_items li JOIN orders o ON o.id = li.order_id WHERE li.product_id = products.id AND o.status = 'closed')"

// orderableProductColumns guards ORDER BY input against injection
var orderableProductColumns = map[string]bool{
	"name":       true,
	"price":      true,
	"quantity":   true,
	"location":   true,
	"created_at": true,
}

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID with its category preloaded
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll lists products matching the filter. All filter keys compose with AND.
func (r *GormProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	query := r.applyFilter(r.db.WithContext(ctx).Model(&catalog.Product{}).Preload("Category"), filter)
	err := query.Find(&products).Error
	return products, err
}

// applyFilter translates filter criteria into query clauses
func (r *GormProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "category_id":
			query = query.Where("category_id = ?", value)
		case "min_price":
			query = query.Where("price >= ?", value)
		case "location":
			query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(fmt.Sprintf("%v", value))+"%")
		case "number_sold":
			query = query.Where(soldCountSubquery+" >= ?", value)
		case "seller_id":
			query = query.Where("seller_id = ?", value)
		}
	}

	orderBy := filter.OrderBy
	if !orderableProductColumns[orderBy] {
		orderBy = "created_at"
	}
	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		dir = "DESC"
	}
	query = query.Order(orderBy + " " + dir)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

// FindBySeller lists a seller's products, newest first
func (r *GormProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// FindRecentByCategory lists the most recently listed products in a category
func (r *GormProductRepository) FindRecentByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindPricedAtMost lists products at or below the given price ceiling
func (r *GormProductRepository) FindPricedAtMost(ctx context.Context, ceiling decimal.Decimal) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Where("price <= ?", ceiling).
		Order("price ASC").
		Find(&products).Error
	return products, err
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Delete removes a product listing
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// NumberSold counts the product's line items on closed orders
func (r *GormProductRepository) NumberSold(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ordering.OrderLineItem{}).
		Joins("JOIN orders ON orders.id = order_line_items.order_id").
		Where("order_line_items.product_id = ? AND orders.status = ?", productID, ordering.OrderStatusClosed).
		Count(&count).Error
	return count, err
}

// AverageRating returns the mean rating for a product, 0 when unrated
func (r *GormProductRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&catalog.ProductRating{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// Ensure interface compliance
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
