package providers

import "context"

// CommerceProvider defines the commerce-platform operations the storefront
// depends on. Each call is a direct pass-through to the remote platform; no
// retries and no local validation happen at this layer.
type CommerceProvider interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error)
	UpdateOrder(ctx context.Context, orderID string, req *UpdateOrderRequest) (*Order, error)
	RetrieveOrder(ctx context.Context, orderID string) (*Order, error)
	PayOrder(ctx context.Context, orderID string, req *PayOrderRequest) (*Order, error)
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*Payment, error)
	CreateInvoice(ctx context.Context, req *CreateInvoiceRequest) (*Invoice, error)
	ListCatalog(ctx context.Context, cursor, types string) ([]CatalogObject, error)
	ListLocations(ctx context.Context) ([]Location, error)
}
