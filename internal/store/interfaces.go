package store

import (
	"context"

	"github.com/MKhiriev/go-food-order/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DataClient is a minimal table-oriented interface to the data store.
// It is implemented by the hosted REST backend and by the SQL backend.
//
// Rows are exchanged as JSON: Select and SelectOne decode them into dest
// with encoding/json, so dest field tags name the table columns.
type DataClient interface {
	// Select decodes every row matched by q into dest, a pointer to a slice.
	Select(ctx context.Context, q *Query, dest any) error
	// SelectOne decodes the single row matched by q into dest.
	// It returns ErrNoRowsFound or ErrMultipleRowsFound otherwise.
	SelectOne(ctx context.Context, q *Query, dest any) error
	// Insert stores record as a new row of table.
	Insert(ctx context.Context, table string, record Record) error
	// Update sets values on every row matched by q. q must have a filter.
	Update(ctx context.Context, q *Query, values Record) error
	// Delete removes every row matched by q. q must have a filter.
	Delete(ctx context.Context, q *Query) error
	// Ping checks that the data store is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying connections.
	Close() error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

type MenuItemRepository interface {
	ListItems(ctx context.Context) ([]models.MenuItem, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.Order) error
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
	FindOrderByID(ctx context.Context, orderID int64) (models.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}
