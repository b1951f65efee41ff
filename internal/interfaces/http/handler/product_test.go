package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/catalog"
	storefrontapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/storefront"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/catalog"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/shared"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/domain/storefront"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/dto"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, sellerID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindRecentByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, limit)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindPricedAtMost(ctx context.Context, ceiling decimal.Decimal) ([]catalog.Product, error) {
	args := m.Called(ctx, ceiling)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) NumberSold(ctx context.Context, productID uuid.UUID) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(float64), args.Error(1)
}

// MockCategoryRepository implements catalog.CategoryRepository for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.ProductCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.ProductCategory), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.ProductCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockRatingRepository implements catalog.RatingRepository for testing
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*catalog.ProductRating, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductRating), args.Error(1)
}

func (m *MockRatingRepository) Save(ctx context.Context, rating *catalog.ProductRating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

// MockLikeRepository implements catalog.LikeRepository for testing
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*catalog.ProductLike, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductLike), args.Error(1)
}

func (m *MockLikeRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]catalog.ProductLike, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]catalog.ProductLike), args.Error(1)
}

func (m *MockLikeRepository) Save(ctx context.Context, like *catalog.ProductLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository implements identity.CustomerRepository for testing
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByUsername(ctx context.Context, username string) (*identity.Customer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *identity.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockRecommendationRepository implements storefront.RecommendationRepository for testing
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) FindByRecommender(ctx context.Context, recommenderID uuid.UUID) ([]storefront.Recommendation, error) {
	args := m.Called(ctx, recommenderID)
	return args.Get(0).([]storefront.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) FindByReceiver(ctx context.Context, receiverID uuid.UUID) ([]storefront.Recommendation, error) {
	args := m.Called(ctx, receiverID)
	return args.Get(0).([]storefront.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) Save(ctx context.Context, recommendation *storefront.Recommendation) error {
	args := m.Called(ctx, recommendation)
	return args.Error(0)
}

type noopImageStorage struct{}

func (noopImageStorage) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	return nil
}

// Test setup helpers

type productHandlerMocks struct {
	products        *MockProductRepository
	categories      *MockCategoryRepository
	ratings         *MockRatingRepository
	likes           *MockLikeRepository
	customers       *MockCustomerRepository
	recommendations *MockRecommendationRepository
}

func setupProductHandler() (*ProductHandler, *productHandlerMocks) {
	mocks := &productHandlerMocks{
		products:        new(MockProductRepository),
		categories:      new(MockCategoryRepository),
		ratings:         new(MockRatingRepository),
		likes:           new(MockLikeRepository),
		customers:       new(MockCustomerRepository),
		recommendations: new(MockRecommendationRepository),
	}

	productService := catalogapp.NewProductService(
		mocks.products,
		mocks.categories,
		mocks.ratings,
		mocks.likes,
		noopImageStorage{},
	)
	recommendationService := storefrontapp.NewRecommendationService(
		mocks.recommendations,
		mocks.customers,
		mocks.products,
	)
	return NewProductHandler(productService, recommendationService), mocks
}

// setupAuthedRouter wires a router whose requests all carry the given
// customer's JWT context, the way the auth middleware would set it.
func setupAuthedRouter(customerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.JWTCustomerIDKey, customerID.String())
		c.Next()
	})
	return router
}

func setupAnonymousRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func listedProduct(sellerID uuid.UUID) *catalog.Product {
	product, _ := catalog.NewProduct(sellerID, nil, "Reading Lamp", decimal.NewFromFloat(24.50), "Warm light", 3, "Nashville")
	return product
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// Tests

func TestProductHandler_Create_Success(t *testing.T) {
	handler, mocks := setupProductHandler()
	customerID := uuid.New()

	mocks.products.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

	router := setupAuthedRouter(customerID)
	router.POST("/products", handler.Create)

	body, _ := json.Marshal(catalogapp.CreateProductRequest{
		Name:        "Reading Lamp",
		Price:       24.50,
		Description: "Warm light",
		Quantity:    3,
		Location:    "Nashville",
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mocks.products.AssertExpectations(t)
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	handler, mocks := setupProductHandler()

	router := setupAnonymousRouter()
	router.POST("/products", handler.Create)

	body, _ := json.Marshal(catalogapp.CreateProductRequest{
		Name:        "Reading Lamp",
		Price:       24.50,
		Description: "Warm light",
		Quantity:    3,
	})
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
	assert.Equal(t, "Authentication required", resp.Error.Message)
	mocks.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductHandler_Create_InvalidJSON(t *testing.T) {
	handler, _ := setupProductHandler()

	router := setupAuthedRouter(uuid.New())
	router.POST("/products", handler.Create)

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandler_GetByID_Success(t *testing.T) {
	handler, mocks := setupProductHandler()
	product := listedProduct(uuid.New())

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.products.On("AverageRating", mock.Anything, product.ID).Return(4.5, nil)
	mocks.products.On("NumberSold", mock.Anything, product.ID).Return(int64(2), nil)

	router := setupAnonymousRouter()
	router.GET("/products/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/products/"+product.ID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	mocks.products.AssertExpectations(t)
}

func TestProductHandler_GetByID_NotFound(t *testing.T) {
	handler, mocks := setupProductHandler()
	productID := uuid.New()

	mocks.products.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

	router := setupAnonymousRouter()
	router.GET("/products/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/products/"+productID.String(), nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestProductHandler_GetByID_InvalidID(t *testing.T) {
	handler, _ := setupProductHandler()

	router := setupAnonymousRouter()
	router.GET("/products/:id", handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Invalid product ID format", resp.Error.Message)
}

func TestProductHandler_Rate_FirstRatingCreated(t *testing.T) {
	handler, mocks := setupProductHandler()
	customerID := uuid.New()
	product := listedProduct(uuid.New())

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.ratings.On("FindByCustomerAndProduct", mock.Anything, customerID, product.ID).Return(nil, shared.ErrNotFound)
	mocks.ratings.On("Save", mock.Anything, mock.AnythingOfType("*catalog.ProductRating")).Return(nil)

	router := setupAuthedRouter(customerID)
	router.POST("/products/:id/rate_product", handler.Rate)

	body, _ := json.Marshal(catalogapp.RateProductRequest{Rating: 4, Review: "Solid"})
	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/rate_product", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mocks.ratings.AssertExpectations(t)
}

func TestProductHandler_Rate_RepeatRatingUpdates(t *testing.T) {
	handler, mocks := setupProductHandler()
	customerID := uuid.New()
	product := listedProduct(uuid.New())

	existing, err := catalog.NewProductRating(customerID, product.ID, 2, "Meh")
	require.NoError(t, err)

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.ratings.On("FindByCustomerAndProduct", mock.Anything, customerID, product.ID).Return(existing, nil)
	mocks.ratings.On("Save", mock.Anything, existing).Return(nil)

	router := setupAuthedRouter(customerID)
	router.POST("/products/:id/rate_product", handler.Rate)

	body, _ := json.Marshal(catalogapp.RateProductRequest{Rating: 5, Review: "Changed my mind"})
	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/rate_product", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, existing.Rating)
	mocks.ratings.AssertExpectations(t)
}

func TestProductHandler_Like_Success(t *testing.T) {
	handler, mocks := setupProductHandler()
	customerID := uuid.New()
	product := listedProduct(uuid.New())

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.likes.On("FindByCustomerAndProduct", mock.Anything, customerID, product.ID).Return(nil, shared.ErrNotFound)
	mocks.likes.On("Save", mock.Anything, mock.AnythingOfType("*catalog.ProductLike")).Return(nil)

	router := setupAuthedRouter(customerID)
	router.POST("/products/:id/like", handler.Like)

	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, product.ID.String(), data["product_id"])
	mocks.likes.AssertExpectations(t)
}

func TestProductHandler_Like_Duplicate(t *testing.T) {
	handler, mocks := setupProductHandler()
	customerID := uuid.New()
	product := listedProduct(uuid.New())

	like, err := catalog.NewProductLike(customerID, product.ID)
	require.NoError(t, err)

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.likes.On("FindByCustomerAndProduct", mock.Anything, customerID, product.ID).Return(like, nil)

	router := setupAuthedRouter(customerID)
	router.POST("/products/:id/like", handler.Like)

	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/like", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	mocks.likes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductHandler_Recommend_NoContent(t *testing.T) {
	handler, mocks := setupProductHandler()
	recommenderID := uuid.New()
	product := listedProduct(uuid.New())

	receiver, err := identity.NewCustomer(uuid.New(), "", "")
	require.NoError(t, err)

	mocks.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	mocks.customers.On("FindByUsername", mock.Anything, "meg").Return(receiver, nil)
	mocks.recommendations.On("Save", mock.Anything, mock.AnythingOfType("*storefront.Recommendation")).Return(nil)

	router := setupAuthedRouter(recommenderID)
	router.POST("/products/:id/recommend", handler.Recommend)

	body, _ := json.Marshal(storefrontapp.RecommendProductRequest{Username: "meg"})
	req := httptest.NewRequest(http.MethodPost, "/products/"+product.ID.String()+"/recommend", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.recommendations.AssertExpectations(t)
}
