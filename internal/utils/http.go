package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-food-order/models"
)

// WriteJSON marshals data and writes it with statusCode and an
// application/json content type. The body is marshaled before anything is
// written, so a marshaling failure still produces a clean 500.
//
//	WriteJSON(w, models.MessageResponse{Message: "order created"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteError writes a {"error": message} body.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	body, _ := json.Marshal(models.ErrorResponse{Error: message})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
