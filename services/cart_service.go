package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/providers"
)

// CartService translates storefront cart actions into platform order
// mutations. Every mutating call carries a fresh idempotency key; order
// updates carry the caller's version so concurrent edits surface as platform
// conflicts instead of silent overwrites.
type CartService interface {
	CreateOrder(ctx context.Context, locationID, itemVarID string, quantity int) (*models.Order, *ServiceError)
	AddItem(ctx context.Context, orderID, locationID, itemVarID string, quantity, version int) (*models.Order, *ServiceError)
	SetItemQuantity(ctx context.Context, orderID, locationID, itemUID string, quantity, version int) (*models.Order, *ServiceError)
	AddDeliveryDetails(ctx context.Context, req *models.DeliveryDetailsRequest) (*models.Order, *ServiceError)
	RetrieveOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError)
}

type cartServiceImpl struct {
	provider providers.CommerceProvider
	logger   *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(provider providers.CommerceProvider, logger *zap.Logger) CartService {
	return &cartServiceImpl{provider: provider, logger: logger}
}

// CreateOrder creates a single-location order with one line item.
func (s *cartServiceImpl) CreateOrder(ctx context.Context, locationID, itemVarID string, quantity int) (*models.Order, *ServiceError) {
	req := &providers.CreateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: &providers.OrderData{
			LocationID: locationID,
			LineItems: []providers.OrderLineItem{{
				Quantity:        strconv.Itoa(quantity),
				CatalogObjectID: itemVarID,
			}},
		},
	}

	order, err := s.provider.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("CreateOrder failed", zap.String("location_id", locationID), zap.Error(err))
		return nil, fromProvider("Failed to create order", err)
	}
	return toOrderModel(order), nil
}

// AddItem appends one line item to an existing order.
func (s *cartServiceImpl) AddItem(ctx context.Context, orderID, locationID, itemVarID string, quantity, version int) (*models.Order, *ServiceError) {
	req := &providers.UpdateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: &providers.OrderData{
			LocationID: locationID,
			LineItems: []providers.OrderLineItem{{
				Quantity:        strconv.Itoa(quantity),
				CatalogObjectID: itemVarID,
			}},
			Version: version,
		},
	}

	order, err := s.provider.UpdateOrder(ctx, orderID, req)
	if err != nil {
		s.logger.Error("AddItem failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fromProvider("Failed to update order", err)
	}
	return toOrderModel(order), nil
}

// SetItemQuantity changes the quantity of a line item already in the cart,
// addressed by its uid. Quantity 0 keeps the line item in place so the item
// can be re-added without re-selecting it.
func (s *cartServiceImpl) SetItemQuantity(ctx context.Context, orderID, locationID, itemUID string, quantity, version int) (*models.Order, *ServiceError) {
	req := &providers.UpdateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: &providers.OrderData{
			LocationID: locationID,
			LineItems: []providers.OrderLineItem{{
				UID:      itemUID,
				Quantity: strconv.Itoa(quantity),
			}},
			Version: version,
		},
	}

	order, err := s.provider.UpdateOrder(ctx, orderID, req)
	if err != nil {
		s.logger.Error("SetItemQuantity failed", zap.String("order_id", orderID), zap.String("item_uid", itemUID), zap.Error(err))
		return nil, fromProvider("Failed to update order", err)
	}
	return toOrderModel(order), nil
}

// AddDeliveryDetails attaches a proposed shipment fulfillment to the order.
func (s *cartServiceImpl) AddDeliveryDetails(ctx context.Context, details *models.DeliveryDetailsRequest) (*models.Order, *ServiceError) {
	req := &providers.UpdateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: &providers.OrderData{
			LocationID: details.LocationID,
			Fulfillments: []providers.Fulfillment{{
				Type:  "SHIPMENT",
				State: "PROPOSED",
				ShipmentDetails: &providers.ShipmentDetails{
					Recipient: &providers.FulfillmentRecipient{
						DisplayName:  details.DeliveryName,
						EmailAddress: details.DeliveryEmail,
						PhoneNumber:  details.DeliveryNumber,
						Address: &providers.Address{
							AddressLine1:                 details.DeliveryAddress,
							Locality:                     details.DeliveryCity,
							AdministrativeDistrictLevel1: details.DeliveryState,
							PostalCode:                   details.DeliveryPostal,
						},
					},
					ExpectedShippedAt: details.DeliveryTime,
				},
			}},
			Version: details.Version,
		},
	}

	order, err := s.provider.UpdateOrder(ctx, details.OrderID, req)
	if err != nil {
		s.logger.Error("AddDeliveryDetails failed", zap.String("order_id", details.OrderID), zap.Error(err))
		return nil, fromProvider("Failed to add delivery details", err)
	}
	return toOrderModel(order), nil
}

// RetrieveOrder returns the current order snapshot.
func (s *cartServiceImpl) RetrieveOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError) {
	order, err := s.provider.RetrieveOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("RetrieveOrder failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fromProvider("Failed to retrieve order", err)
	}
	return toOrderModel(order), nil
}
