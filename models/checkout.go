package models

// Payment is the storefront-facing view of a created payment.
type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status,omitempty"`
	AmountMoney *Money `json:"amountMoney,omitempty"`
	OrderID     string `json:"orderId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Invoice is the storefront-facing view of a draft invoice.
type Invoice struct {
	ID              string                  `json:"id"`
	Version         int                     `json:"version"`
	LocationID      string                  `json:"locationId,omitempty"`
	OrderID         string                  `json:"orderId,omitempty"`
	Status          string                  `json:"status,omitempty"`
	DeliveryMethod  string                  `json:"deliveryMethod,omitempty"`
	PaymentRequests []InvoicePaymentRequest `json:"paymentRequests,omitempty"`
	CreatedAt       string                  `json:"createdAt,omitempty"`
}

type InvoicePaymentRequest struct {
	RequestType string            `json:"requestType"`
	DueDate     string            `json:"dueDate"`
	Reminders   []InvoiceReminder `json:"reminders,omitempty"`
}

type InvoiceReminder struct {
	RelativeScheduledDays int    `json:"relativeScheduledDays"`
	Message               string `json:"message,omitempty"`
}
