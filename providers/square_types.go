package providers

import "encoding/json"

// Wire shapes for the Square v2 REST API. Monetary amounts are json.Number so
// values beyond 2^53 survive decode/encode byte-identical instead of being
// rounded through a float64.

type Money struct {
	Amount   json.Number `json:"amount,omitempty"`
	Currency string      `json:"currency,omitempty"`
}

type Order struct {
	ID           string          `json:"id,omitempty"`
	LocationID   string          `json:"location_id,omitempty"`
	LineItems    []OrderLineItem `json:"line_items,omitempty"`
	Fulfillments []Fulfillment   `json:"fulfillments,omitempty"`
	TotalMoney   *Money          `json:"total_money,omitempty"`
	State        string          `json:"state,omitempty"`
	Version      int             `json:"version,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	UpdatedAt    string          `json:"updated_at,omitempty"`
}

type OrderLineItem struct {
	UID             string `json:"uid,omitempty"`
	CatalogObjectID string `json:"catalog_object_id,omitempty"`
	Name            string `json:"name,omitempty"`
	Quantity        string `json:"quantity,omitempty"`
	BasePriceMoney  *Money `json:"base_price_money,omitempty"`
	TotalMoney      *Money `json:"total_money,omitempty"`
}

type Fulfillment struct {
	UID             string           `json:"uid,omitempty"`
	Type            string           `json:"type,omitempty"`
	State           string           `json:"state,omitempty"`
	ShipmentDetails *ShipmentDetails `json:"shipment_details,omitempty"`
}

type ShipmentDetails struct {
	Recipient         *FulfillmentRecipient `json:"recipient,omitempty"`
	ExpectedShippedAt string                `json:"expected_shipped_at,omitempty"`
}

type FulfillmentRecipient struct {
	DisplayName  string   `json:"display_name,omitempty"`
	EmailAddress string   `json:"email_address,omitempty"`
	PhoneNumber  string   `json:"phone_number,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
}

type CreateOrderRequest struct {
	IdempotencyKey string     `json:"idempotency_key"`
	Order          *OrderData `json:"order"`
}

type UpdateOrderRequest struct {
	IdempotencyKey string     `json:"idempotency_key"`
	Order          *OrderData `json:"order"`
}

// OrderData is the mutable subset of an order sent on create/update calls.
type OrderData struct {
	LocationID   string          `json:"location_id,omitempty"`
	LineItems    []OrderLineItem `json:"line_items,omitempty"`
	Fulfillments []Fulfillment   `json:"fulfillments,omitempty"`
	Version      int             `json:"version,omitempty"`
}

type PayOrderRequest struct {
	IdempotencyKey string   `json:"idempotency_key"`
	PaymentIDs     []string `json:"payment_ids,omitempty"`
}

type CreatePaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    *Money `json:"amount_money"`
	OrderID        string `json:"order_id,omitempty"`
}

type Payment struct {
	ID          string `json:"id,omitempty"`
	Status      string `json:"status,omitempty"`
	AmountMoney *Money `json:"amount_money,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
	SourceType  string `json:"source_type,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type CreateInvoiceRequest struct {
	IdempotencyKey string       `json:"idempotency_key"`
	Invoice        *InvoiceData `json:"invoice"`
}

type InvoiceData struct {
	LocationID             string                  `json:"location_id,omitempty"`
	OrderID                string                  `json:"order_id,omitempty"`
	PaymentRequests        []InvoicePaymentRequest `json:"payment_requests,omitempty"`
	DeliveryMethod         string                  `json:"delivery_method,omitempty"`
	AcceptedPaymentMethods *AcceptedPaymentMethods `json:"accepted_payment_methods,omitempty"`
}

type InvoicePaymentRequest struct {
	RequestType string            `json:"request_type,omitempty"`
	DueDate     string            `json:"due_date,omitempty"`
	Reminders   []InvoiceReminder `json:"reminders,omitempty"`
}

type InvoiceReminder struct {
	RelativeScheduledDays int    `json:"relative_scheduled_days"`
	Message               string `json:"message,omitempty"`
}

type AcceptedPaymentMethods struct {
	Card bool `json:"card"`
}

type Invoice struct {
	ID              string                  `json:"id,omitempty"`
	Version         int                     `json:"version,omitempty"`
	LocationID      string                  `json:"location_id,omitempty"`
	OrderID         string                  `json:"order_id,omitempty"`
	Status          string                  `json:"status,omitempty"`
	DeliveryMethod  string                  `json:"delivery_method,omitempty"`
	PaymentRequests []InvoicePaymentRequest `json:"payment_requests,omitempty"`
	CreatedAt       string                  `json:"created_at,omitempty"`
}

type CatalogObject struct {
	ID                string                    `json:"id,omitempty"`
	Type              string                    `json:"type,omitempty"`
	ItemData          *CatalogItemData          `json:"item_data,omitempty"`
	ItemVariationData *CatalogItemVariationData `json:"item_variation_data,omitempty"`
	ImageData         *CatalogImageData         `json:"image_data,omitempty"`
}

type CatalogItemData struct {
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageIDs    []string        `json:"image_ids,omitempty"`
	Variations  []CatalogObject `json:"variations,omitempty"`
}

type CatalogItemVariationData struct {
	Name       string `json:"name,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

type CatalogImageData struct {
	URL string `json:"url,omitempty"`
}

type Location struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}
