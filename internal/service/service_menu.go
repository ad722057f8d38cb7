package service

import (
	"context"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

type menuService struct {
	menuItemRepository store.MenuItemRepository

	logger *logger.Logger
}

func NewMenuService(menuItemRepository store.MenuItemRepository, logger *logger.Logger) MenuService {
	return &menuService{
		menuItemRepository: menuItemRepository,
		logger:             logger,
	}
}

func (s *menuService) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menuItemRepository.ListItems(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*menuService.ListItems").Msg("item listing failed")
		return nil, StorageError(err)
	}
	if items == nil {
		items = make([]models.MenuItem, 0)
	}

	return items, nil
}
