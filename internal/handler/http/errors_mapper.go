package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/utils"
	"github.com/MKhiriev/go-food-order/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrAuth:       http.StatusUnauthorized,
	service.ErrNotFound:   http.StatusNotFound,
	service.ErrForbidden:  http.StatusForbidden,
	service.ErrStorage:    http.StatusBadRequest,
	service.ErrInternal:   http.StatusInternalServerError,

	validators.ErrInvalidRequest:  http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidID:                  http.StatusBadRequest,
	ErrInvalidGzip:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err as {"error": message} with the status of its kind.
// Unknown errors are reported without their message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	var svcErr *service.Error
	if !errors.As(err, &svcErr) && status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
