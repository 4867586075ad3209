package services_test

import (
	"context"
	"fmt"

	"storefront-service/providers"
)

// mockProvider records every request and either replays a canned response or
// echoes the request back as the platform would.
type mockProvider struct {
	createOrderReqs   []*providers.CreateOrderRequest
	updateOrderIDs    []string
	updateOrderReqs   []*providers.UpdateOrderRequest
	payOrderReqs      []*providers.PayOrderRequest
	createPaymentReqs []*providers.CreatePaymentRequest
	createInvoiceReqs []*providers.CreateInvoiceRequest
	retrieveCalls     int

	retrieveResp *providers.Order
	paymentResp  *providers.Payment
	invoiceResp  *providers.Invoice
	locations    []providers.Location
	catalog      []providers.CatalogObject
	err          error
}

func (m *mockProvider) CreateOrder(_ context.Context, req *providers.CreateOrderRequest) (*providers.Order, error) {
	m.createOrderReqs = append(m.createOrderReqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.echoOrder("order-created", req.Order, 1), nil
}

func (m *mockProvider) UpdateOrder(_ context.Context, orderID string, req *providers.UpdateOrderRequest) (*providers.Order, error) {
	m.updateOrderIDs = append(m.updateOrderIDs, orderID)
	m.updateOrderReqs = append(m.updateOrderReqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.echoOrder(orderID, req.Order, req.Order.Version+1), nil
}

func (m *mockProvider) RetrieveOrder(_ context.Context, orderID string) (*providers.Order, error) {
	m.retrieveCalls++
	if m.err != nil {
		return nil, m.err
	}
	if m.retrieveResp != nil {
		return m.retrieveResp, nil
	}
	return &providers.Order{ID: orderID, Version: 1}, nil
}

func (m *mockProvider) PayOrder(_ context.Context, orderID string, req *providers.PayOrderRequest) (*providers.Order, error) {
	m.payOrderReqs = append(m.payOrderReqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &providers.Order{ID: orderID, State: "COMPLETED"}, nil
}

func (m *mockProvider) CreatePayment(_ context.Context, req *providers.CreatePaymentRequest) (*providers.Payment, error) {
	m.createPaymentReqs = append(m.createPaymentReqs, req)
	if m.err != nil {
		return nil, m.err
	}
	if m.paymentResp != nil {
		return m.paymentResp, nil
	}
	return &providers.Payment{
		ID:          "pay-1",
		Status:      "COMPLETED",
		AmountMoney: req.AmountMoney,
		OrderID:     req.OrderID,
	}, nil
}

func (m *mockProvider) CreateInvoice(_ context.Context, req *providers.CreateInvoiceRequest) (*providers.Invoice, error) {
	m.createInvoiceReqs = append(m.createInvoiceReqs, req)
	if m.err != nil {
		return nil, m.err
	}
	if m.invoiceResp != nil {
		return m.invoiceResp, nil
	}
	return &providers.Invoice{
		ID:              "inv-1",
		Version:         0,
		LocationID:      req.Invoice.LocationID,
		OrderID:         req.Invoice.OrderID,
		Status:          "DRAFT",
		DeliveryMethod:  req.Invoice.DeliveryMethod,
		PaymentRequests: req.Invoice.PaymentRequests,
	}, nil
}

func (m *mockProvider) ListCatalog(_ context.Context, _, _ string) ([]providers.CatalogObject, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.catalog, nil
}

func (m *mockProvider) ListLocations(_ context.Context) ([]providers.Location, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.locations, nil
}

func (m *mockProvider) echoOrder(id string, data *providers.OrderData, version int) *providers.Order {
	order := &providers.Order{
		ID:         id,
		LocationID: data.LocationID,
		State:      "OPEN",
		Version:    version,
	}
	for i, li := range data.LineItems {
		if li.UID == "" {
			li.UID = fmt.Sprintf("uid-%d", i)
		}
		order.LineItems = append(order.LineItems, li)
	}
	order.Fulfillments = append(order.Fulfillments, data.Fulfillments...)
	return order
}
