package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
	"storefront-service/services"
)

// CartController serves the cart mutation routes.
type CartController struct {
	cart services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(cart services.CartService) *CartController {
	return &CartController{cart: cart}
}

// OrderInfo handles POST /cart/order-info
func (cc *CartController) OrderInfo(c *gin.Context) {
	var req models.OrderInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, svcErr := cc.cart.RetrieveOrder(c.Request.Context(), req.OrderID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orderInfo": order})
}

// AddItem handles POST /cart/update-order-add-item
func (cc *CartController) AddItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, svcErr := cc.cart.AddItem(c.Request.Context(), req.OrderID, req.LocationID, req.ItemVarID, req.ItemQuantity, req.Version)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "Success! Order updated!",
		"order":  order,
	})
}

// UpdateItemQuantity handles POST /cart/update-order-item-quantity
func (cc *CartController) UpdateItemQuantity(c *gin.Context) {
	var req models.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, svcErr := cc.cart.SetItemQuantity(c.Request.Context(), req.OrderID, req.LocationID, req.ItemUID, req.ItemQuantity, req.Version)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":       "Success! Order updated!",
		"updatedOrder": order,
	})
}
