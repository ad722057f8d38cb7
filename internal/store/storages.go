package store

import (
	"context"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
)

// Storages bundles the repositories sharing one data client.
type Storages struct {
	UserRepository     UserRepository
	MenuItemRepository MenuItemRepository
	OrderRepository    OrderRepository

	client DataClient
}

// NewStorages connects to the configured data store and builds the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	client, err := NewDataClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewStoragesWithClient(client, log), nil
}

// NewStoragesWithClient builds the repositories on an existing client.
func NewStoragesWithClient(client DataClient, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(client, log),
		MenuItemRepository: NewMenuItemRepository(client, log),
		OrderRepository:    NewOrderRepository(client, log),
		client:             client,
	}
}

// NewDataClient returns the REST client when a remote data service is
// configured and the SQL client otherwise.
func NewDataClient(ctx context.Context, cfg config.Storage, log *logger.Logger) (DataClient, error) {
	if cfg.Remote.URL != "" {
		log.Info().Str("func", "NewDataClient").Str("url", cfg.Remote.URL).Msg("using remote data service")
		return NewRESTClient(cfg.Remote, log)
	}

	db, err := NewConnectDB(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, err
	}

	return NewSQLClient(db, log), nil
}

// Ping checks the data store.
func (s *Storages) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Storages) Close() error {
	return s.client.Close()
}
