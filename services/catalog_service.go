package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/providers"
)

// catalogTypes selects the catalog object types the storefront needs.
const catalogTypes = "ITEM,IMAGE"

// CatalogService builds the storefront landing listing from the platform's
// locations and catalog.
type CatalogService interface {
	Listing(ctx context.Context) (*models.CatalogListing, *ServiceError)
}

type catalogServiceImpl struct {
	provider providers.CommerceProvider
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(provider providers.CommerceProvider, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{provider: provider, logger: logger}
}

// Listing returns the first location's id and the projected catalog. Only the
// first location is used; the storefront is single-location.
func (s *catalogServiceImpl) Listing(ctx context.Context) (*models.CatalogListing, *ServiceError) {
	locations, err := s.provider.ListLocations(ctx)
	if err != nil {
		s.logger.Error("ListLocations failed", zap.Error(err))
		return nil, fromProvider("Failed to list locations", err)
	}
	if len(locations) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "No locations configured for this account"}
	}

	objects, err := s.provider.ListCatalog(ctx, "", catalogTypes)
	if err != nil {
		s.logger.Error("ListCatalog failed", zap.Error(err))
		return nil, fromProvider("Failed to list catalog", err)
	}

	return &models.CatalogListing{
		LocationID: locations[0].ID,
		Items:      ProjectCatalog(objects),
	}, nil
}

// ProjectCatalog joins ITEM objects to their referenced IMAGE objects and
// flattens variations into a storefront-friendly listing. An unresolved image
// reference yields an item without an image; output order follows input order.
func ProjectCatalog(objects []providers.CatalogObject) []models.CatalogItem {
	images := make(map[string]string)
	for _, obj := range objects {
		if obj.Type == "IMAGE" && obj.ImageData != nil {
			images[obj.ID] = obj.ImageData.URL
		}
	}

	items := make([]models.CatalogItem, 0, len(objects))
	for _, obj := range objects {
		if obj.Type != "ITEM" || obj.ItemData == nil {
			continue
		}

		item := models.CatalogItem{
			ID:          obj.ID,
			Name:        obj.ItemData.Name,
			Description: obj.ItemData.Description,
			Variations:  make([]models.CatalogVariation, 0, len(obj.ItemData.Variations)),
		}
		if len(obj.ItemData.ImageIDs) > 0 {
			item.ImageURL = images[obj.ItemData.ImageIDs[0]]
		}
		for _, v := range obj.ItemData.Variations {
			variation := models.CatalogVariation{ID: v.ID}
			if v.ItemVariationData != nil {
				variation.Name = v.ItemVariationData.Name
				if price := v.ItemVariationData.PriceMoney; price != nil {
					variation.PriceAmount = price.Amount
					variation.PriceCurrency = price.Currency
				}
			}
			item.Variations = append(item.Variations, variation)
		}
		items = append(items, item)
	}
	return items
}
