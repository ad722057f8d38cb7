package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

type orderService struct {
	orderRepository store.OrderRepository

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// CreateOrder stores a new order. Neither the user nor the ordered items are
// checked for existence.
func (s *orderService) CreateOrder(ctx context.Context, userID int64, items models.OrderItems) error {
	log := logger.FromContext(ctx)

	err := s.orderRepository.CreateOrder(ctx, models.Order{UserID: userID, Items: items})
	if err != nil {
		log.Err(err).Str("func", "*orderService.CreateOrder").Int64("user_id", userID).Msg("order creation failed")
		return StorageError(err)
	}

	return nil
}

// ListOrders returns all orders of userID, never nil.
func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	orders, err := s.orderRepository.ListOrdersByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*orderService.ListOrders").Int64("user_id", userID).Msg("order listing failed")
		return nil, StorageError(err)
	}
	if orders == nil {
		orders = make([]models.Order, 0)
	}

	return orders, nil
}

// DeleteOrder removes an order after checking that it exists.
//
// Returns:
//   - ErrOrderNotFound if the lookup fails for any reason.
//   - ErrForeignUser if ctx carries an authenticated user who does not own
//     the order.
//   - a storage error if the data store rejects the delete.
//   - ErrInternalServer for any other delete failure.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	log := logger.FromContext(ctx)

	order, err := s.orderRepository.FindOrderByID(ctx, orderID)
	if err != nil {
		log.Err(err).Str("func", "*orderService.DeleteOrder").Int64("order_id", orderID).Msg("order lookup failed")
		return withCause(ErrOrderNotFound, err)
	}

	if userID, ok := utils.GetUserIDFromContext(ctx); ok && userID != order.UserID {
		log.Warn().Str("func", "*orderService.DeleteOrder").Int64("order_id", orderID).Int64("user_id", userID).Msg("order belongs to another user")
		return ErrForeignUser
	}

	err = s.orderRepository.DeleteOrder(ctx, orderID)
	if err == nil {
		return nil
	}

	log.Err(err).Str("func", "*orderService.DeleteOrder").Int64("order_id", orderID).Msg("order deletion failed")

	var dataErr *store.DataError
	if errors.As(err, &dataErr) {
		return StorageError(dataErr)
	}

	return withCause(ErrInternalServer, err)
}
