package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
)

func newTestRESTClient(t *testing.T, handler http.HandlerFunc) DataClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewRESTClient(config.Remote{
		URL:      srv.URL,
		Key:      "service-key",
		RESTPath: "/rest/v1",
		Timeout:  5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return client
}

func TestRESTClient_Select(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/orders", r.URL.Path)
		assert.Equal(t, "id,items", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.5", r.URL.Query().Get("user_id"))
		assert.Empty(t, r.URL.Query().Get("limit"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":1,"items":[]},{"id":2,"items":[{"itemId":3}]}]`)
	})

	var rows []orderRow
	err := client.Select(context.Background(), From("orders").Select("id", "items").Eq("user_id", int64(5)), &rows)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[1].ID)
	assert.JSONEq(t, `{"itemId":3}`, string(rows[1].Items[0]))
}

func TestRESTClient_SelectOne(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "single row", body: `[{"id":1,"email":"a@b.c"}]`},
		{name: "no rows", body: `[]`, wantErr: ErrNoRowsFound},
		{name: "two rows", body: `[{"id":1},{"id":2}]`, wantErr: ErrMultipleRowsFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "2", r.URL.Query().Get("limit"))
				assert.Equal(t, "*", r.URL.Query().Get("select"))
				_, _ = io.WriteString(w, tt.body)
			})

			var user userRow
			err := client.SelectOne(context.Background(), From("users").Eq("email", "a@b.c"), &user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "a@b.c", user.Email)
		})
	}
}

func TestRESTClient_Insert(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/users", r.URL.Path)
		assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		var body []map[string]any
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) && assert.Len(t, body, 1) {
			assert.Equal(t, "a@b.c", body[0]["email"])
		}

		w.WriteHeader(http.StatusCreated)
	})

	err := client.Insert(context.Background(), "users", Record{"email": "a@b.c", "name": "A"})
	require.NoError(t, err)
}

func TestRESTClient_Insert_Conflict(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"code":"23505","details":"Key (email)=(a@b.c) already exists.","hint":null,"message":"duplicate key value violates unique constraint \"users_email_key\""}`)
	})

	err := client.Insert(context.Background(), "users", Record{"email": "a@b.c"})

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, http.StatusConflict, dataErr.Status)
	assert.Equal(t, "23505", dataErr.Code)
	assert.Equal(t, `duplicate key value violates unique constraint "users_email_key"`, dataErr.Error())
	assert.ErrorIs(t, err, ErrUniqueViolation)
}

func TestRESTClient_ErrorWithoutBody(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var rows []map[string]any
	err := client.Select(context.Background(), From("items"), &rows)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, http.StatusText(http.StatusUnauthorized), dataErr.Error())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRESTClient_Update(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.9", r.URL.Query().Get("id"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"password": "hash"}, body)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Update(context.Background(), From("users").Eq("id", int64(9)), Record{"password": "hash"})
	require.NoError(t, err)
}

func TestRESTClient_Delete(t *testing.T) {
	client := newTestRESTClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/rest/v1/orders", r.URL.Path)
		assert.Equal(t, "eq.4", r.URL.Query().Get("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), From("orders").Eq("id", int64(4))))
	assert.ErrorIs(t, client.Delete(context.Background(), From("orders")), ErrMissingFilter)
}

func TestRESTClient_TransportError(t *testing.T) {
	client, err := NewRESTClient(config.Remote{
		URL:     "http://127.0.0.1:1",
		Key:     "k",
		Timeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	err = client.Ping(context.Background())
	assert.ErrorIs(t, err, ErrSendingRequest)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw      string
		restPath string
		want     string
		wantErr  bool
	}{
		{raw: "https://abc.supabase.co", restPath: "/rest/v1", want: "https://abc.supabase.co/rest/v1"},
		{raw: "https://abc.supabase.co/", restPath: "rest/v1/", want: "https://abc.supabase.co/rest/v1"},
		{raw: "abc.supabase.co", restPath: "/rest/v1", want: "https://abc.supabase.co/rest/v1"},
		{raw: "http://localhost:3001", restPath: "", want: "http://localhost:3001"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw, tt.restPath)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
