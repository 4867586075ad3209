package models

import "encoding/json"

// Money keeps the amount as json.Number so large integer amounts are
// serialized exactly as the platform returned them.
type Money struct {
	Amount   json.Number `json:"amount,omitempty"`
	Currency string      `json:"currency"`
}

// Order is the storefront-facing view of a platform order.
type Order struct {
	ID           string          `json:"id"`
	LocationID   string          `json:"locationId"`
	LineItems    []OrderLineItem `json:"lineItems"`
	Fulfillments []Fulfillment   `json:"fulfillments,omitempty"`
	TotalMoney   *Money          `json:"totalMoney,omitempty"`
	State        string          `json:"state,omitempty"`
	Version      int             `json:"version"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}

type OrderLineItem struct {
	UID             string      `json:"uid,omitempty"`
	CatalogObjectID string      `json:"catalogObjectId,omitempty"`
	Name            string      `json:"name,omitempty"`
	Quantity        json.Number `json:"quantity"`
	BasePriceMoney  *Money      `json:"basePriceMoney,omitempty"`
	TotalMoney      *Money      `json:"totalMoney,omitempty"`
}

type Fulfillment struct {
	UID             string           `json:"uid,omitempty"`
	Type            string           `json:"type"`
	State           string           `json:"state"`
	ShipmentDetails *ShipmentDetails `json:"shipmentDetails,omitempty"`
}

type ShipmentDetails struct {
	Recipient         *Recipient `json:"recipient,omitempty"`
	ExpectedShippedAt string     `json:"expectedShippedAt,omitempty"`
}

type Recipient struct {
	DisplayName  string   `json:"displayName,omitempty"`
	EmailAddress string   `json:"emailAddress,omitempty"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	Address      *Address `json:"address,omitempty"`
}

type Address struct {
	AddressLine1                 string `json:"addressLine1,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrativeDistrictLevel1,omitempty"`
	PostalCode                   string `json:"postalCode,omitempty"`
}
