package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-food-order/internal/service"
	"github.com/MKhiriev/go-food-order/internal/store"
	"github.com/MKhiriev/go-food-order/models"
)

func TestListItems(t *testing.T) {
	menu := &mockMenuService{
		listItemsFn: func(context.Context) ([]models.MenuItem, error) {
			return []models.MenuItem{
				{ID: 1, Name: "Pizza", Price: 9.5},
				{ID: 2, Name: "Soup", Price: 4},
			}, nil
		},
	}

	router := newTestHandler(t, &service.Services{MenuService: menu}).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Pizza","price":9.5},{"id":2,"name":"Soup","price":4}]`, rec.Body.String())
}

func TestListItems_StorageFailure(t *testing.T) {
	storeErr := store.NewDataError("42P01", `relation "items" does not exist`, "", "")
	menu := &mockMenuService{
		listItemsFn: func(context.Context) ([]models.MenuItem, error) {
			return nil, service.StorageError(storeErr)
		},
	}

	router := newTestHandler(t, &service.Services{MenuService: menu}).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"relation \"items\" does not exist"}`, rec.Body.String())
}

func TestListItems_PublicWhenAuthRequired(t *testing.T) {
	menu := &mockMenuService{
		listItemsFn: func(context.Context) ([]models.MenuItem, error) {
			return []models.MenuItem{}, nil
		},
	}

	router := newTestHandler(t, &service.Services{MenuService: menu}, withRequireAuth).Init()
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
