package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
)

// RegisterRoutes wires the three route groups, the static domain-association
// mount and the 404 fallback.
func RegisterRoutes(
	r *gin.Engine,
	storefront *controllers.StorefrontController,
	cart *controllers.CartController,
	checkout *controllers.CheckoutController,
	wellKnownDir string,
) {
	r.GET("/", storefront.GetListing)
	r.POST("/create-order", storefront.CreateOrder)

	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/order-info", cart.OrderInfo)
		cartGroup.POST("/update-order-add-item", cart.AddItem)
		cartGroup.POST("/update-order-item-quantity", cart.UpdateItemQuantity)
	}

	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.POST("/add-delivery-details", checkout.AddDeliveryDetails)
		checkoutGroup.POST("/create-invoice", checkout.CreateInvoice)
		checkoutGroup.POST("/payment", checkout.Payment)
	}

	// Domain-association files for payment-method verification.
	r.Static("/.well-known", wellKnownDir)

	r.NoRoute(controllers.NotFoundHandler)
}
