package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServices wires every service to a migrated in-memory database.
func newSQLiteServices(t *testing.T) *Services {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := NewServices(storages, testAppConfig, logger.Nop())
	require.NoError(t, err)

	return services
}

func TestServices_RegisterThenLogin(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	require.NoError(t, s.AuthService.Register(ctx, "Ann", "ann@example.com", "secret"))

	session, err := s.AuthService.Login(ctx, "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Ann", session.Name)

	token, err := s.AuthService.ParseToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", token.Claims.Email)
	assert.Equal(t, session.UserID, token.Claims.ID)

	user, err := s.UserService.GetUser(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: session.UserID, Name: "Ann", Email: "ann@example.com"}, user)
}

func TestServices_DuplicateRegistration(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	require.NoError(t, s.AuthService.Register(ctx, "Ann", "ann@example.com", "secret"))

	err := s.AuthService.Register(ctx, "Ann again", "ann@example.com", "other")
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, store.ErrUniqueViolation)
	assert.NotEmpty(t, err.Error())
}

func TestServices_ChangePassword(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	require.NoError(t, s.AuthService.Register(ctx, "Ann", "ann@example.com", "old"))
	session, err := s.AuthService.Login(ctx, "ann@example.com", "old")
	require.NoError(t, err)

	require.NoError(t, s.AuthService.ChangePassword(ctx, session.UserID, "new"))

	_, err = s.AuthService.Login(ctx, "ann@example.com", "old")
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	_, err = s.AuthService.Login(ctx, "ann@example.com", "new")
	assert.NoError(t, err)
}

func TestServices_LoginUnknownEmail(t *testing.T) {
	s := newSQLiteServices(t)

	_, err := s.AuthService.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestServices_OrderLifecycle(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	orders, err := s.OrderService.ListOrders(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	require.NoError(t, s.OrderService.CreateOrder(ctx, 1, models.OrderItems{json.RawMessage(`{"itemId":2,"quantity":3}`)}))

	orders, err = s.OrderService.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	require.NoError(t, s.OrderService.DeleteOrder(ctx, orders[0].ID))

	err = s.OrderService.DeleteOrder(ctx, orders[0].ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	err = s.OrderService.DeleteOrder(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServices_ListItemsAndPing(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	items, err := s.MenuService.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, s.AppInfoService.Ping(ctx))
	assert.Equal(t, "test", s.AppInfoService.GetAppVersion(ctx))
}
