package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront-service/providers"
	"storefront-service/services"
)

func catalogFixture() []providers.CatalogObject {
	return []providers.CatalogObject{
		{
			ID:   "ITEM1",
			Type: "ITEM",
			ItemData: &providers.CatalogItemData{
				Name:        "Espresso",
				Description: "Double shot",
				ImageIDs:    []string{"IMG1"},
				Variations: []providers.CatalogObject{
					{
						ID:   "V1",
						Type: "ITEM_VARIATION",
						ItemVariationData: &providers.CatalogItemVariationData{
							Name:       "Regular",
							PriceMoney: &providers.Money{Amount: "350", Currency: "USD"},
						},
					},
				},
			},
		},
		{
			ID:   "ITEM2",
			Type: "ITEM",
			ItemData: &providers.CatalogItemData{
				Name:     "Tote Bag",
				ImageIDs: []string{"IMG-MISSING"},
			},
		},
		{
			ID:        "IMG1",
			Type:      "IMAGE",
			ImageData: &providers.CatalogImageData{URL: "https://cdn.example.com/espresso.png"},
		},
	}
}

func TestProjectCatalog_JoinsItemsToImages(t *testing.T) {
	items := services.ProjectCatalog(catalogFixture())

	assert.Len(t, items, 2)
	assert.Equal(t, "ITEM1", items[0].ID)
	assert.Equal(t, "Espresso", items[0].Name)
	assert.Equal(t, "https://cdn.example.com/espresso.png", items[0].ImageURL)
	assert.Len(t, items[0].Variations, 1)
	assert.Equal(t, "V1", items[0].Variations[0].ID)
	assert.Equal(t, "350", items[0].Variations[0].PriceAmount.String())
	assert.Equal(t, "USD", items[0].Variations[0].PriceCurrency)
}

func TestProjectCatalog_UnresolvedImageYieldsNoImage(t *testing.T) {
	items := services.ProjectCatalog(catalogFixture())

	assert.Equal(t, "ITEM2", items[1].ID)
	assert.Empty(t, items[1].ImageURL)
}

func TestProjectCatalog_PreservesInputOrderAndEmptyVariations(t *testing.T) {
	items := services.ProjectCatalog(catalogFixture())

	assert.Equal(t, []string{"ITEM1", "ITEM2"}, []string{items[0].ID, items[1].ID})
	assert.NotNil(t, items[1].Variations)
	assert.Empty(t, items[1].Variations)
}

func TestProjectCatalog_EmptyInput(t *testing.T) {
	items := services.ProjectCatalog(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListing_UsesFirstLocation(t *testing.T) {
	mock := &mockProvider{
		locations: []providers.Location{{ID: "L1", Name: "Main"}, {ID: "L2", Name: "Annex"}},
		catalog:   catalogFixture(),
	}
	svc := services.NewCatalogService(mock, zap.NewNop())

	listing, svcErr := svc.Listing(context.Background())

	assert.Nil(t, svcErr)
	assert.Equal(t, "L1", listing.LocationID)
	assert.Len(t, listing.Items, 2)
}

func TestListing_NoLocationsIsError(t *testing.T) {
	mock := &mockProvider{}
	svc := services.NewCatalogService(mock, zap.NewNop())

	listing, svcErr := svc.Listing(context.Background())

	assert.Nil(t, listing)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}
