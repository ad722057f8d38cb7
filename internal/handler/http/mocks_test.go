package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/models"
)

// Service mocks used by the handler tests. Each method field can be
// overridden per test case; calling an unset field panics.

type mockAuthService struct {
	registerFn       func(ctx context.Context, name, email, password string) error
	loginFn          func(ctx context.Context, email, password string) (models.Session, error)
	changePasswordFn func(ctx context.Context, userID int64, newPassword string) error
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) error {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	return m.changePasswordFn(ctx, userID, newPassword)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockOrderService struct {
	createOrderFn func(ctx context.Context, userID int64, items models.OrderItems) error
	listOrdersFn  func(ctx context.Context, userID int64) ([]models.Order, error)
	deleteOrderFn func(ctx context.Context, orderID int64) error
}

func (m *mockOrderService) CreateOrder(ctx context.Context, userID int64, items models.OrderItems) error {
	return m.createOrderFn(ctx, userID, items)
}

func (m *mockOrderService) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	return m.listOrdersFn(ctx, userID)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return m.deleteOrderFn(ctx, orderID)
}

type mockMenuService struct {
	listItemsFn func(ctx context.Context) ([]models.MenuItem, error)
}

func (m *mockMenuService) ListItems(ctx context.Context) ([]models.MenuItem, error) {
	return m.listItemsFn(ctx)
}

type mockUserService struct {
	getUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockAppInfoService struct {
	version string
	pingErr error
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Ping(_ context.Context) error {
	return m.pingErr
}

// newTestHandler builds a Handler around svcs. Missing services are left
// nil, so only the routes a test exercises need a mock.
func newTestHandler(t *testing.T, svcs *service.Services, opts ...func(*config.StructuredConfig)) *Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	var cfg config.StructuredConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return NewHandler(svcs, cfg, logger.Nop())
}

func withRequireAuth(cfg *config.StructuredConfig) {
	cfg.App.RequireAuth = true
}
