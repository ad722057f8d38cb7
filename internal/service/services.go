package service

import (
	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
)

type Services struct {
	AuthService    AuthService
	OrderService   OrderService
	MenuService    MenuService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		OrderService:   NewOrderService(storages.OrderRepository, logger),
		MenuService:    NewMenuService(storages.MenuItemRepository, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
