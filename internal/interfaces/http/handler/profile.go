package handler

import (
	orderingapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/ordering"
	storefrontapp "github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/application/storefront"
	"github.com/NSS-Day-Cohort-74/Bangazon-api-tezhkg/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler handles the customer's profile, cart and favorite
// seller endpoints
type ProfileHandler struct {
	BaseHandler
	profileService  *storefrontapp.ProfileService
	cartService     *orderingapp.CartService
	favoriteService *storefrontapp.FavoriteService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(
	profileService *storefrontapp.ProfileService,
	cartService *orderingapp.CartService,
	favoriteService *storefrontapp.FavoriteService,
) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		cartService:     cartService,
		favoriteService: favoriteService,
	}
}

// GetProfile returns the customer's aggregated profile view
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// GetCart returns the customer's open order with its item count
func (h *ProfileHandler) GetCart(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithSize(c, cart, cart.Size)
}

// AddToCart places a product on the customer's open order
func (h *ProfileHandler) AddToCart(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req orderingapp.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.cartService.AddProduct(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// ClearCart deletes the customer's open order and everything on it
func (h *ProfileHandler) ClearCart(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListFavoriteSellers returns the customer's favorite sellers
func (h *ProfileHandler) ListFavoriteSellers(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	favorites, err := h.favoriteService.List(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, favorites)
}

// FavoriteSeller marks a store as one of the customer's favorites
func (h *ProfileHandler) FavoriteSeller(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req storefrontapp.FavoriteSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	favorite, err := h.favoriteService.Favorite(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, favorite)
}

// UnfavoriteSeller removes a favorite-seller link by store ID
func (h *ProfileHandler) UnfavoriteSeller(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(c.Param("store_id"))
	if err != nil {
		h.BadRequest(c, "Invalid store ID format")
		return
	}

	if err := h.favoriteService.Unfavorite(c.Request.Context(), customerID, storeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
