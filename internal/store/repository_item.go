package store

import (
	"context"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

const itemsTable = "items"

type menuItemRepository struct {
	client DataClient
	logger *logger.Logger
}

func NewMenuItemRepository(client DataClient, logger *logger.Logger) MenuItemRepository {
	logger.Debug().Msg("creating menu item repository")
	return &menuItemRepository{
		client: client,
		logger: logger,
	}
}

// ListItems returns the whole catalog, unfiltered and in store order.
func (r *menuItemRepository) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	log := logger.FromContext(ctx)

	items := make([]models.MenuItem, 0)
	if err := r.client.Select(ctx, From(itemsTable), &items); err != nil {
		log.Err(err).Str("func", "*menuItemRepository.ListItems").Msg("error listing items")
		return nil, err
	}

	log.Debug().Str("func", "*menuItemRepository.ListItems").Int("count", len(items)).Msg("items found")
	return items, nil
}
