package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/storage"
	"github.com/jhoicas/inventory-tracker/pkg/config"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	st, err := storage.Open(ctx, config.DBConfig{Driver: config.DriverSQLite, SQLitePath: sqlite.MemoryPath})
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, config.DriverSQLite, st.Driver)
	now := time.Now().UTC()
	require.NoError(t, st.Items.Create(ctx, &entity.InventoryItem{ID: "i1", Name: "Milk", Quantity: 1, Category: "Dairy", QRPayload: "x", CreatedAt: now, UpdatedAt: now}))
	got, err := st.Items.GetByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.DBConfig{Driver: "mongo"})
	assert.Error(t, err)
}
