package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

var alwaysUp = pingerFunc(func(context.Context) error { return nil })

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, alwaysUp, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, alwaysUp, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := config.App{Version: "3.1.4"}
	svc, err := NewAppInfoService(cfg, alwaysUp, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got)
}

func TestGetAppVersion_VersionWithSpecialChars(t *testing.T) {
	version := "v1.2.3-beta+build.42"
	svc, err := NewAppInfoService(config.App{Version: version}, alwaysUp, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, version, svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// Ping
// ─────────────────────────────────────────────

func TestPing_DataStoreUp(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, alwaysUp, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestPing_DataStoreDown(t *testing.T) {
	down := errors.New("connection refused")
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, pingerFunc(func(context.Context) error {
		return down
	}), logger.Nop())
	require.NoError(t, err)

	err = svc.Ping(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, down)
	assert.Equal(t, "internal server error", err.Error())
}
