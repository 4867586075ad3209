package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/models"
	"storefront-service/services"
)

// CheckoutController serves the delivery, invoice and payment routes.
type CheckoutController struct {
	cart     services.CartService
	checkout services.CheckoutService
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(cart services.CartService, checkout services.CheckoutService) *CheckoutController {
	return &CheckoutController{cart: cart, checkout: checkout}
}

// AddDeliveryDetails handles POST /checkout/add-delivery-details
func (kc *CheckoutController) AddDeliveryDetails(c *gin.Context) {
	var req models.DeliveryDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	order, svcErr := kc.cart.AddDeliveryDetails(c.Request.Context(), &req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "Success! Delivery details added!",
		"order":  order,
	})
}

// CreateInvoice handles POST /checkout/create-invoice
func (kc *CheckoutController) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	invoice, order, svcErr := kc.checkout.CreateInvoice(c.Request.Context(), req.OrderID)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  "Success! Invoice created!",
		"invoice": invoice,
		"order":   order,
	})
}

// Payment handles POST /checkout/payment
func (kc *CheckoutController) Payment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	payment, svcErr := kc.checkout.Pay(c.Request.Context(), req.OrderID, req.Nonce, req.IdempotencyKey)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  "Success! Order paid!",
		"payment": payment,
	})
}
