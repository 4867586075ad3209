package models

import "encoding/json"

// CatalogListing is the storefront landing payload: the first location's id
// plus the denormalized catalog.
type CatalogListing struct {
	LocationID string        `json:"locationId"`
	Items      []CatalogItem `json:"items"`
}

// CatalogItem is a sellable item joined with its image, if any.
type CatalogItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Variations  []CatalogVariation `json:"variations"`
}

type CatalogVariation struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	PriceAmount   json.Number `json:"priceAmount,omitempty"`
	PriceCurrency string      `json:"priceCurrency,omitempty"`
}
