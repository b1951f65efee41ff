package catalog

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles product listing use cases
type ProductService struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
	ratings    catalog.RatingRepository
	likes      catalog.LikeRepository
	images     ImageStorage
}

// NewProductService creates a new product service
func NewProductService(
	products catalog.ProductRepository,
	categories catalog.CategoryRepository,
	ratings catalog.RatingRepository,
	likes catalog.LikeRepository,
	images ImageStorage,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		ratings:    ratings,
		likes:      likes,
		images:     images,
	}
}

// Create lists a new product for the seller
func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid category ID")
		}
		if _, err := s.categories.FindByID(ctx, id); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
			}
			return nil, err
		}
		categoryID = &id
	}

	product, err := catalog.NewProduct(
		sellerID,
		categoryID,
		req.Name,
		decimal.NewFromFloat(req.Price),
		req.Description,
		req.Quantity,
		req.Location,
	)
	if err != nil {
		return nil, err
	}

	if req.ImageData != "" {
		path, err := s.storeImage(ctx, product.ID, req.ImageData)
		if err != nil {
			return nil, err
		}
		product.ImagePath = path
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product, 0, 0)
	return &resp, nil
}

// storeImage decodes a base64 payload, uploads it and returns the storage key
func (s *ProductService) storeImage(ctx context.Context, productID uuid.UUID, imageData string) (string, error) {
	contentType := "image/png"
	ext := "png"

	// Accept data URIs of the form data:image/<ext>;base64,<payload>
	if strings.HasPrefix(imageData, "data:") {
		parts := strings.SplitN(imageData, ";base64,", 2)
		if len(parts) != 2 {
			return "", shared.NewDomainError("INVALID_INPUT", "Malformed image data")
		}
		contentType = strings.TrimPrefix(parts[0], "data:")
		if idx := strings.Index(contentType, "/"); idx >= 0 {
			ext = contentType[idx+1:]
		}
		imageData = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return "", shared.NewDomainError("INVALID_INPUT", "Image data is not valid base64")
	}

	key := fmt.Sprintf("products/%s.%s", productID, ext)
	if err := s.images.Upload(ctx, key, data, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// GetByID returns the product detail view. viewerID is nil for
// unauthenticated requests; such viewers can never rate.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*ProductDetailResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	avg, err := s.products.AverageRating(ctx, id)
	if err != nil {
		return nil, err
	}
	sold, err := s.products.NumberSold(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ProductDetailResponse{
		ProductResponse: ToProductResponse(product, avg, sold),
	}

	if viewerID != nil {
		if _, err := s.likes.FindByCustomerAndProduct(ctx, *viewerID, id); err == nil {
			detail.IsLiked = true
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}

		if _, err := s.ratings.FindByCustomerAndProduct(ctx, *viewerID, id); err != nil {
			if !errors.Is(err, shared.ErrNotFound) {
				return nil, err
			}
			detail.CanBeRated = true
		}
	}

	return detail, nil
}

// List returns products matching the composable filters
func (s *ProductService) List(ctx context.Context, req ProductListFilter) ([]ProductResponse, error) {
	filter := shared.DefaultFilter()

	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid category ID")
		}
		filter.Filters["category_id"] = id
	}
	if req.MinPrice != "" {
		price, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid minimum price")
		}
		filter.Filters["min_price"] = price
	}
	if req.Location != "" {
		filter.Filters["location"] = req.Location
	}
	if req.NumberSold > 0 {
		filter.Filters["number_sold"] = req.NumberSold
	}
	// quantity caps the result to the N most recent listings
	if req.Quantity > 0 {
		filter.Limit = req.Quantity
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
		filter.OrderDir = "asc"
		if strings.EqualFold(req.Direction, "desc") {
			filter.OrderDir = "desc"
		}
	}

	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		avg, err := s.products.AverageRating(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		sold, err := s.products.NumberSold(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, ToProductResponse(&products[i], avg, sold))
	}
	return responses, nil
}

// Update replaces a product's listing fields
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}

	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		cid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return shared.NewDomainError("INVALID_INPUT", "Invalid category ID")
		}
		if _, err := s.categories.FindByID(ctx, cid); err != nil {
			return err
		}
		categoryID = &cid
	}

	if err := product.UpdateListing(req.Name, decimal.NewFromFloat(req.Price), req.Description, req.Quantity, req.Location, categoryID); err != nil {
		return err
	}

	return s.products.Save(ctx, product)
}

// Delete removes a product listing
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.products.Delete(ctx, id)
}

// Rate records a customer's rating for a product. It reports whether a
// new rating was created; a repeat submission updates the existing row.
func (s *ProductService) Rate(ctx context.Context, customerID, productID uuid.UUID, req RateProductRequest) (*RatingResponse, bool, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, false, err
	}

	existing, err := s.ratings.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, false, err
	}

	if existing != nil {
		if err := existing.Update(req.Rating, req.Review); err != nil {
			return nil, false, err
		}
		if err := s.ratings.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		resp := ToRatingResponse(existing)
		return &resp, false, nil
	}

	rating, err := catalog.NewProductRating(customerID, productID, req.Rating, req.Review)
	if err != nil {
		return nil, false, err
	}
	if err := s.ratings.Save(ctx, rating); err != nil {
		return nil, false, err
	}
	resp := ToRatingResponse(rating)
	return &resp, true, nil
}

// Like marks a product as liked. Liking twice is a conflict.
func (s *ProductService) Like(ctx context.Context, customerID, productID uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}

	if _, err := s.likes.FindByCustomerAndProduct(ctx, customerID, productID); err == nil {
		return shared.NewDomainError("ALREADY_EXISTS", "Product is already liked")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	like, err := catalog.NewProductLike(customerID, productID)
	if err != nil {
		return err
	}
	return s.likes.Save(ctx, like)
}

// Unlike removes a like; unliking a product that was never liked is not found
func (s *ProductService) Unlike(ctx context.Context, customerID, productID uuid.UUID) error {
	like, err := s.likes.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return err
	}
	return s.likes.Delete(ctx, like.ID)
}

// ListLiked returns the customer's liked products
func (s *ProductService) ListLiked(ctx context.Context, customerID uuid.UUID) ([]ProductResponse, error) {
	likes, err := s.likes.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(likes))
	for i := range likes {
		if likes[i].Product == nil {
			continue
		}
		responses = append(responses, ToProductResponse(likes[i].Product, 0, 0))
	}
	return responses, nil
}
