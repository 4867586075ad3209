package services

import (
	"encoding/json"

	"storefront-service/models"
	"storefront-service/providers"
)

// Explicit mappings from platform wire shapes to storefront DTOs. Monetary
// amounts stay json.Number end to end.

func toMoneyModel(m *providers.Money) *models.Money {
	if m == nil {
		return nil
	}
	return &models.Money{Amount: m.Amount, Currency: m.Currency}
}

func toOrderModel(o *providers.Order) *models.Order {
	if o == nil {
		return nil
	}
	order := &models.Order{
		ID:         o.ID,
		LocationID: o.LocationID,
		LineItems:  make([]models.OrderLineItem, 0, len(o.LineItems)),
		TotalMoney: toMoneyModel(o.TotalMoney),
		State:      o.State,
		Version:    o.Version,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	for _, li := range o.LineItems {
		quantity := li.Quantity
		if quantity == "" {
			quantity = "0"
		}
		order.LineItems = append(order.LineItems, models.OrderLineItem{
			UID:             li.UID,
			CatalogObjectID: li.CatalogObjectID,
			Name:            li.Name,
			Quantity:        json.Number(quantity),
			BasePriceMoney:  toMoneyModel(li.BasePriceMoney),
			TotalMoney:      toMoneyModel(li.TotalMoney),
		})
	}
	for _, f := range o.Fulfillments {
		order.Fulfillments = append(order.Fulfillments, toFulfillmentModel(f))
	}
	return order
}

func toFulfillmentModel(f providers.Fulfillment) models.Fulfillment {
	out := models.Fulfillment{UID: f.UID, Type: f.Type, State: f.State}
	if f.ShipmentDetails == nil {
		return out
	}
	details := &models.ShipmentDetails{ExpectedShippedAt: f.ShipmentDetails.ExpectedShippedAt}
	if r := f.ShipmentDetails.Recipient; r != nil {
		recipient := &models.Recipient{
			DisplayName:  r.DisplayName,
			EmailAddress: r.EmailAddress,
			PhoneNumber:  r.PhoneNumber,
		}
		if a := r.Address; a != nil {
			recipient.Address = &models.Address{
				AddressLine1:                 a.AddressLine1,
				Locality:                     a.Locality,
				AdministrativeDistrictLevel1: a.AdministrativeDistrictLevel1,
				PostalCode:                   a.PostalCode,
			}
		}
		details.Recipient = recipient
	}
	out.ShipmentDetails = details
	return out
}

func toPaymentModel(p *providers.Payment) *models.Payment {
	if p == nil {
		return nil
	}
	return &models.Payment{
		ID:          p.ID,
		Status:      p.Status,
		AmountMoney: toMoneyModel(p.AmountMoney),
		OrderID:     p.OrderID,
		CreatedAt:   p.CreatedAt,
	}
}

func toInvoiceModel(inv *providers.Invoice) *models.Invoice {
	if inv == nil {
		return nil
	}
	out := &models.Invoice{
		ID:             inv.ID,
		Version:        inv.Version,
		LocationID:     inv.LocationID,
		OrderID:        inv.OrderID,
		Status:         inv.Status,
		DeliveryMethod: inv.DeliveryMethod,
		CreatedAt:      inv.CreatedAt,
	}
	for _, pr := range inv.PaymentRequests {
		req := models.InvoicePaymentRequest{RequestType: pr.RequestType, DueDate: pr.DueDate}
		for _, r := range pr.Reminders {
			req.Reminders = append(req.Reminders, models.InvoiceReminder{
				RelativeScheduledDays: r.RelativeScheduledDays,
				Message:               r.Message,
			})
		}
		out.PaymentRequests = append(out.PaymentRequests, req)
	}
	return out
}
