package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/utils"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.MenuService.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}
