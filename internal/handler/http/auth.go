package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	if err := h.services.AuthService.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("email", req.Email).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: "user registered"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	session, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", session.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, session, http.StatusOK)
}
