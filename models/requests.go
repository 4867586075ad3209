package models

// Request bodies for the storefront HTTP surface. Only fields the derived
// platform request cannot be built without are marked required; everything
// else is validated upstream.

type CreateOrderRequest struct {
	ItemVarID    string `json:"itemVarId" binding:"required"`
	ItemQuantity int    `json:"itemQuantity" binding:"required,gt=0"`
	LocationID   string `json:"locationId" binding:"required"`
}

type OrderInfoRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type AddItemRequest struct {
	OrderID      string `json:"orderId" binding:"required"`
	ItemVarID    string `json:"itemVarId" binding:"required"`
	ItemQuantity int    `json:"itemQuantity" binding:"required,gt=0"`
	LocationID   string `json:"locationId" binding:"required"`
	Version      int    `json:"version"`
}

type UpdateItemQuantityRequest struct {
	LocationID   string `json:"locationId" binding:"required"`
	OrderID      string `json:"orderId" binding:"required"`
	ItemUID      string `json:"itemUid" binding:"required"`
	ItemQuantity int    `json:"itemQuantity" binding:"gte=0"`
	Version      int    `json:"version"`
}

type DeliveryDetailsRequest struct {
	OrderID         string `json:"orderId" binding:"required"`
	LocationID      string `json:"locationId" binding:"required"`
	DeliveryName    string `json:"deliveryName"`
	DeliveryEmail   string `json:"deliveryEmail"`
	DeliveryNumber  string `json:"deliveryNumber"`
	DeliveryTime    string `json:"deliveryTime"`
	DeliveryAddress string `json:"deliveryAddress"`
	DeliveryCity    string `json:"deliveryCity"`
	DeliveryState   string `json:"deliveryState"`
	DeliveryPostal  string `json:"deliveryPostal"`
	Version         int    `json:"version"`
}

type CreateInvoiceRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

type PaymentRequest struct {
	OrderID        string `json:"orderId" binding:"required"`
	Nonce          string `json:"nonce" binding:"required"`
	IdempotencyKey string `json:"idempotencyKey"`
}
