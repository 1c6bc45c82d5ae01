package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newItem(id, name string, qty int) *entity.InventoryItem {
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	return &entity.InventoryItem{ID: id, Name: name, Quantity: qty, Category: "Dairy", QRPayload: "qr-" + id, CreatedAt: now, UpdatedAt: now}
}

func TestInventoryRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(openDB(t))

	require.NoError(t, repo.Create(ctx, newItem("i1", "Milk", 10)))

	got, err := repo.GetByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Milk", got.Name)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "qr-i1", got.QRPayload)
	assert.True(t, got.CreatedAt.Equal(time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)))

	qty := 3
	updated, err := repo.Update(ctx, "i1", entity.ItemChanges{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)
	assert.Equal(t, "Milk", updated.Name, "los campos ausentes no cambian")
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	require.NoError(t, repo.UpdateQRPayload(ctx, "i1", "nuevo"))
	got, err = repo.GetByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "nuevo", got.QRPayload)

	deleted, err := repo.Delete(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, 3, deleted.Quantity)

	_, err = repo.GetByID(ctx, "i1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryRepo_NoEncontrado(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(openDB(t))
	qty := 1

	_, err := repo.Update(ctx, "nope", entity.ItemChanges{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Delete(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateQRPayload(ctx, "nope", "x"), domain.ErrNotFound)
}

func TestInventoryRepo_ListYBajoStock(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewInventoryRepository(openDB(t))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.Create(ctx, newItem("c", "Cheese", 8)))
	require.NoError(t, repo.Create(ctx, newItem("a", "Apples", 5)))
	require.NoError(t, repo.Create(ctx, newItem("b", "Butter", 2)))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Apples", "Butter", "Cheese"}, []string{list[0].Name, list[1].Name, list[2].Name})

	low, err := repo.ListLowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, 2, low[0].Quantity)
	assert.Equal(t, 5, low[1].Quantity)
}

func TestMovementRepo_OrdenDescendenteConEmpate(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewMovementRepository(openDB(t))
	at := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "m1", ItemID: "i1", Direction: entity.MovementIn, Quantity: 10, Date: at}))
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "m2", ItemID: "i1", Direction: entity.MovementOut, Quantity: 7, Date: at}))
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "m3", ItemID: "i1", Direction: entity.MovementIn, Quantity: 1, Date: at.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entity.Movement{ID: "x", ItemID: "i2", Direction: entity.MovementIn, Quantity: 1, Date: at}))

	list, err := repo.ListByItem(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"m2", "m1", "m3"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, entity.MovementOut, list[0].Direction)

	none, err := repo.ListByItem(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAuditLogRepo_PorItemYAccion(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewAuditLogRepository(openDB(t))
	at := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	snap := newItem("i1", "Milk", 5).Snapshot()

	require.NoError(t, repo.Create(ctx, &entity.AuditLogEntry{ID: "a1", ItemID: "i1", Action: entity.AuditCreated,
		Details: entity.CreatedDetails{CreatedWith: entity.ItemInput{Name: "Milk", Quantity: 5, Category: "Dairy"}}, Timestamp: at}))
	require.NoError(t, repo.Create(ctx, &entity.AuditLogEntry{ID: "a2", ItemID: "i1", Action: entity.AuditDeleted,
		Details: entity.DeletedDetails{DeletedProduct: snap}, Timestamp: at.Add(time.Minute)}))

	byItem, err := repo.ListByItem(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, byItem, 2)
	assert.Equal(t, entity.AuditDeleted, byItem[0].Action)

	deleted, err := repo.ListByAction(ctx, entity.AuditDeleted)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	d, ok := deleted[0].Details.(entity.DeletedDetails)
	require.True(t, ok)
	assert.Equal(t, "Milk", d.DeletedProduct.Name)
	assert.True(t, deleted[0].Timestamp.Equal(at.Add(time.Minute)))
}

func TestUserRepo_EmailUnico(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewUserRepository(openDB(t))
	now := time.Now().UTC()
	u := &entity.User{ID: "u1", Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", Role: entity.RoleStaff, CreatedAt: now, UpdatedAt: now}

	require.NoError(t, repo.Create(ctx, u))
	dup := *u
	dup.ID = "u2"
	assert.ErrorIs(t, repo.Create(ctx, &dup), domain.ErrEmailAlreadyExists)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	missing, err := repo.GetByEmail(ctx, "otro@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
