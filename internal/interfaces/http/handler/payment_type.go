package handler

import (
	identityapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/identity"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentTypeHandler handles payment method endpoints
type PaymentTypeHandler struct {
	BaseHandler
	paymentTypeService *identityapp.PaymentTypeService
}

// NewPaymentTypeHandler creates a new PaymentTypeHandler
func NewPaymentTypeHandler(paymentTypeService *identityapp.PaymentTypeService) *PaymentTypeHandler {
	return &PaymentTypeHandler{paymentTypeService: paymentTypeService}
}

// Create registers a payment method for the customer
func (h *PaymentTypeHandler) Create(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req identityapp.CreatePaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	paymentType, err := h.paymentTypeService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, paymentType)
}

// List returns the customer's payment methods
func (h *PaymentTypeHandler) List(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentTypes, err := h.paymentTypeService.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, paymentTypes)
}

// GetByID returns one of the customer's payment methods
func (h *PaymentTypeHandler) GetByID(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment type ID format")
		return
	}

	paymentType, err := h.paymentTypeService.GetByID(c.Request.Context(), customerID, paymentTypeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, paymentType)
}

// Delete removes one of the customer's payment methods
func (h *PaymentTypeHandler) Delete(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment type ID format")
		return
	}

	if err := h.paymentTypeService.Delete(c.Request.Context(), customerID, paymentTypeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
