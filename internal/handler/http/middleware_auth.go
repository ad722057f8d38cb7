package http

import (
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the user's ID and email in
// the request context with [utils.WithUser].
//
// Requests without a header, with a malformed header or with an invalid or
// expired token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("user_id", token.Claims.ID).Msg("request authenticated")

		ctx = utils.WithUser(ctx, token.Claims.ID, token.Claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ownUser restricts routes whose {id} path parameter is a user id to the
// authenticated user. Without an authenticated user the request passes
// through unchanged.
func (h *Handler) ownUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		pathUserID, err := pathID(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if pathUserID != userID {
			writeError(w, r, service.ErrForeignUser)
			return
		}

		next.ServeHTTP(w, r)
	})
}
