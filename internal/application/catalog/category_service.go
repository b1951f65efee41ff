package catalog

import (
	"context"

	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/google/uuid"
)

// recentProductsPerCategory bounds the products embedded in a category payload
const recentProductsPerCategory = 5

// CategoryService handles product category use cases
type CategoryService struct {
	categories catalog.CategoryRepository
	products   catalog.ProductRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories catalog.CategoryRepository, products catalog.ProductRepository) *CategoryService {
	return &CategoryService{
		categories: categories,
		products:   products,
	}
}

// Create adds a new product category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewProductCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	return &CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Products: []ProductResponse{},
	}, nil
}

// GetByID returns a category with its most recent products embedded
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, category)
}

// List returns all categories, each with its most recent products
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp, err := s.toResponse(ctx, &categories[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *CategoryService) toResponse(ctx context.Context, category *catalog.ProductCategory) (*CategoryResponse, error) {
	products, err := s.products.FindRecentByCategory(ctx, category.ID, recentProductsPerCategory)
	if err != nil {
		return nil, err
	}

	productResponses := make([]ProductResponse, 0, len(products))
	for i := range products {
		productResponses = append(productResponses, ToProductResponse(&products[i], 0, 0))
	}

	return &CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Products: productResponses,
	}, nil
}
