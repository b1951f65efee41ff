package catalog

import (
	"time"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateProductRequest is the payload for listing a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,max=255"`
	Quantity    int     `json:"quantity" binding:"required,gte=0"`
	Location    string  `json:"location" binding:"max=50"`
	CategoryID  string  `json:"category_id" binding:"omitempty,uuid"`
	// ImageData carries an optional base64-encoded image, with or
	// without a data URI prefix
	ImageData string `json:"image_data"`
}

// UpdateProductRequest is the payload for replacing a listing's fields
type UpdateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=50"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,max=255"`
	Quantity    int     `json:"quantity" binding:"required,gte=0"`
	Location    string  `json:"location" binding:"max=50"`
	CategoryID  string  `json:"category_id" binding:"omitempty,uuid"`
}

// RateProductRequest is the payload for rating a product
type RateProductRequest struct {
	Rating int    `json:"rating" binding:"min=0,max=5"`
	Review string `json:"review" binding:"max=255"`
}

// ProductListFilter carries the composable list query parameters
type ProductListFilter struct {
	CategoryID string `form:"category" binding:"omitempty,uuid"`
	Quantity   int    `form:"quantity" binding:"omitempty,min=1"`
	OrderBy    string `form:"order_by"`
	Direction  string `form:"direction" binding:"omitempty,oneof=asc desc"`
	MinPrice   string `form:"min_price" binding:"omitempty,numeric"`
	NumberSold int    `form:"number_sold" binding:"omitempty,min=0"`
	Location   string `form:"location"`
}

// CreateCategoryRequest is the payload for creating a product category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=55"`
}

// ProductResponse is the list representation of a product
type ProductResponse struct {
	ID            uuid.UUID  `json:"id"`
	SellerID      uuid.UUID  `json:"customer_id"`
	CategoryID    *uuid.UUID `json:"category_id"`
	CategoryName  string     `json:"category_name,omitempty"`
	Name          string     `json:"name"`
	Price         string     `json:"price"`
	Description   string     `json:"description"`
	Quantity      int        `json:"quantity"`
	Location      string     `json:"location"`
	ImagePath     string     `json:"image_path"`
	AverageRating float64    `json:"average_rating"`
	NumberSold    int64      `json:"number_sold"`
	CreatedAt     time.Time  `json:"created_date"`
}

// ProductDetailResponse adds viewer-specific fields to the detail view
type ProductDetailResponse struct {
	ProductResponse
	IsLiked    bool `json:"is_liked"`
	CanBeRated bool `json:"can_be_rated"`
}

// RatingResponse represents a stored rating
type RatingResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
}

// CategoryResponse represents a category with its most recent products
type CategoryResponse struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain product to its response representation
func ToProductResponse(p *catalog.Product, averageRating float64, numberSold int64) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		SellerID:      p.SellerID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Price:         p.Price.StringFixed(2),
		Description:   p.Description,
		Quantity:      p.Quantity,
		Location:      p.Location,
		ImagePath:     p.ImagePath,
		AverageRating: averageRating,
		NumberSold:    numberSold,
		CreatedAt:     p.CreatedAt,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	return resp
}

// ToRatingResponse converts a domain rating to its response representation
func ToRatingResponse(r *catalog.ProductRating) RatingResponse {
	return RatingResponse{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Rating:     r.Rating,
		Review:     r.Review,
	}
}
