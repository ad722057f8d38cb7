package service

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

// AuthService registers users, verifies credentials and issues tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (models.Session, error)
	ChangePassword(ctx context.Context, userID int64, newPassword string) error
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type OrderService interface {
	CreateOrder(ctx context.Context, userID int64, items models.OrderItems) error
	ListOrders(ctx context.Context, userID int64) ([]models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type MenuService interface {
	ListItems(ctx context.Context) ([]models.MenuItem, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// AppInfoService reports the running build and the data store's health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
