package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok && userID != req.UserID {
		writeError(w, r, service.ErrForeignUser)
		return
	}

	if err := h.services.OrderService.CreateOrder(r.Context(), req.UserID, req.Items); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "order created"}, http.StatusOK)
}

// listOrders serves GET /api/orders/{id}, where id is the owner's user id.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.services.OrderService.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.OrderService.DeleteOrder(r.Context(), orderID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "order deleted"}, http.StatusOK)
}
