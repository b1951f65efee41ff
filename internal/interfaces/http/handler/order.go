package handler

import (
	orderingapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/ordering"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order history and completion endpoints
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
	cartService  *orderingapp.CartService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *orderingapp.OrderService, cartService *orderingapp.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

// List returns the customer's orders, optionally filtered by payment type
func (h *OrderHandler) List(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter orderingapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, orders)
}

// GetByID returns one of the customer's orders with line items
func (h *OrderHandler) GetByID(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), customerID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Complete assigns a payment type to the order and closes it
func (h *OrderHandler) Complete(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req orderingapp.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if _, err := h.orderService.Complete(c.Request.Context(), customerID, orderID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RemoveLineItem deletes a line item from the customer's open order
func (h *OrderHandler) RemoveLineItem(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	lineItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid line item ID format")
		return
	}

	if err := h.cartService.RemoveLineItem(c.Request.Context(), customerID, lineItemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
