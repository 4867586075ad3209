package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
	"storefront-service/services"
)

// StorefrontController serves the landing listing and order creation.
type StorefrontController struct {
	catalog services.CatalogService
	cart    services.CartService
}

// NewStorefrontController creates a new StorefrontController.
func NewStorefrontController(catalog services.CatalogService, cart services.CartService) *StorefrontController {
	return &StorefrontController{catalog: catalog, cart: cart}
}

// GetListing handles GET /
func (sc *StorefrontController) GetListing(c *gin.Context) {
	listing, svcErr := sc.catalog.Listing(c.Request.Context())
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// CreateOrder handles POST /create-order
func (sc *StorefrontController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, svcErr := sc.cart.CreateOrder(c.Request.Context(), req.LocationID, req.ItemVarID, req.ItemQuantity)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "Success! Order created!",
		"order":  order,
	})
}
