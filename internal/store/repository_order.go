package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/models"
)

const ordersTable = "orders"

// orderRow is the persisted shape of an order. Items is stored as JSON.
type orderRow struct {
	ID     int64             `json:"id"`
	UserID int64             `json:"user_id"`
	Items  models.OrderItems `json:"items"`
}

func (r orderRow) toModel() models.Order {
	return models.Order{
		ID:     r.ID,
		UserID: r.UserID,
		Items:  r.Items,
	}
}

type orderRepository struct {
	client DataClient
	logger *logger.Logger
}

func NewOrderRepository(client DataClient, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		client: client,
		logger: logger,
	}
}

// CreateOrder inserts an order. Neither the user nor the items are checked
// for existence.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) error {
	log := logger.FromContext(ctx)

	items, err := json.Marshal(order.Items)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error encoding order items")
		return fmt.Errorf("error encoding order items: %w", err)
	}

	err = r.client.Insert(ctx, ordersTable, Record{
		"user_id": order.UserID,
		"items":   json.RawMessage(items),
	})
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Int64("user_id", order.UserID).Msg("error inserting order")
		return err
	}

	return nil
}

// ListOrdersByUser returns every order of userID; an empty slice if none.
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows := make([]orderRow, 0)
	if err := r.client.Select(ctx, From(ordersTable).Eq("user_id", userID), &rows); err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrdersByUser").Int64("user_id", userID).Msg("error listing orders")
		return nil, err
	}

	orders := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toModel())
	}

	return orders, nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, orderID int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	var row orderRow
	if err := r.client.SelectOne(ctx, From(ordersTable).Eq("id", orderID), &row); err != nil {
		log.Err(err).Str("func", "*orderRepository.FindOrderByID").Int64("order_id", orderID).Msg("error finding order")
		return models.Order{}, err
	}

	return row.toModel(), nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	log := logger.FromContext(ctx)

	if err := r.client.Delete(ctx, From(ordersTable).Eq("id", orderID)); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteOrder").Int64("order_id", orderID).Msg("error deleting order")
		return err
	}

	return nil
}
