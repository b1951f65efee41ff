package handler

import (
	storefrontapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/storefront"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StoreHandler handles storefront endpoints
type StoreHandler struct {
	BaseHandler
	storeService *storefrontapp.StoreService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(storeService *storefrontapp.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Create opens a storefront for the customer
func (h *StoreHandler) Create(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req storefrontapp.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	store, err := h.storeService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, store)
}

// List returns every storefront
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.storeService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stores)
}

// GetByID returns a storefront with its listings
func (h *StoreHandler) GetByID(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	store, err := h.storeService.GetByID(c.Request.Context(), storeID, getOptionalCustomerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, store)
}

// Update renames the customer's storefront
func (h *StoreHandler) Update(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	var req storefrontapp.UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if _, err := h.storeService.Update(c.Request.Context(), customerID, storeID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
