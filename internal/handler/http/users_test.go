package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

func TestGetUser(t *testing.T) {
	users := &mockUserService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{ID: userID, Name: "Alice", Email: "alice@example.com", PasswordHash: "$2a$hash"}, nil
		},
	}

	router := newTestHandler(t, &service.Services{UserService: users}).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/user/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"name":"Alice","email":"alice@example.com"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestGetUser_NotFound(t *testing.T) {
	// the store reports a missing row as "no rows", which surfaces as a
	// storage error with the store's message
	storeErr := store.NewDataError("PGRST116", "JSON object requested, multiple (or no) rows returned", "", "")
	users := &mockUserService{
		getUserFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, service.StorageError(storeErr)
		},
	}

	router := newTestHandler(t, &service.Services{UserService: users}).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/user/404", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, storeErr.Message, decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestGetUser_InvalidID(t *testing.T) {
	router := newTestHandler(t, &service.Services{UserService: &mockUserService{}}).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/user/1.5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "changed",
			path:       "/api/user/7/password",
			body:       `{"newPassword":"n3w"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"password changed"}`,
		},
		{
			name:       "missing new password",
			path:       "/api/user/7/password",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid request: newPassword is required"}`,
		},
		{
			name:       "password too long",
			path:       "/api/user/7/password",
			body:       `{"newPassword":"long"}`,
			serviceErr: service.ErrPasswordTooLong,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"password is too long"}`,
		},
		{
			name:       "invalid id",
			path:       "/api/user/me/password",
			body:       `{"newPassword":"n3w"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				changePasswordFn: func(_ context.Context, userID int64, newPassword string) error {
					assert.Equal(t, int64(7), userID)
					assert.NotEmpty(t, newPassword)
					return tt.serviceErr
				},
			}

			router := newTestHandler(t, &service.Services{AuthService: auth}).Init()
			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
