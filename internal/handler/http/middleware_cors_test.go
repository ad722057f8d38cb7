package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/service"
)

func TestWithCORS_Preflight(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		allowed bool
	}{
		{name: "any origin by default", origin: "http://localhost:5173", allowed: true},
		{name: "listed origin", origins: []string{"https://shop.example.com"}, origin: "https://shop.example.com", allowed: true},
		{name: "unlisted origin", origins: []string{"https://shop.example.com"}, origin: "https://evil.example.com", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(t, &service.Services{}, func(cfg *config.StructuredConfig) {
				cfg.App.CORSOrigins = tt.origins
			}).Init()

			req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			allowOrigin := rec.Header().Get("Access-Control-Allow-Origin")
			if !tt.allowed {
				assert.Empty(t, allowOrigin)
				return
			}
			assert.Contains(t, []string{"*", tt.origin}, allowOrigin)
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		})
	}
}

func TestWithCORS_ExposesTraceID(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), traceIDHeader)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
