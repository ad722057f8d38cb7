package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/MKhiriev/go-food-order/internal/mock"
	"github.com/MKhiriev/go-food-order/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMenuItemRepository(ctrl)
	svc := NewMenuService(repo, logger.Nop())

	want := []models.MenuItem{{ID: 1, Name: "Pizza", Price: 9.5}}
	repo.EXPECT().ListItems(gomock.Any()).Return(want, nil)

	got, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMenuService_ListItems_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMenuItemRepository(ctrl)
	svc := NewMenuService(repo, logger.Nop())

	repo.EXPECT().ListItems(gomock.Any()).Return(nil, nil)

	got, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMenuService_ListItems_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMenuItemRepository(ctrl)
	svc := NewMenuService(repo, logger.Nop())

	repo.EXPECT().ListItems(gomock.Any()).Return(nil, errors.New(`relation "items" does not exist`))

	_, err := svc.ListItems(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, `relation "items" does not exist`, err.Error())
}
