package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/movement"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

// Recorrido completo create → update → delete sobre SQLite.
func TestMutationService_HistorialSobreSQLite(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	movements := movement.NewService(sqlite.NewMovementRepository(db))
	audit := auditlog.NewService(sqlite.NewAuditLogRepository(db))
	svc := inventory.NewMutationService(sqlite.NewInventoryRepository(db), movements, audit,
		qrcode.NewEncoder(64), nil, logger.Nop())

	milk, err := svc.Create(ctx, entity.ItemInput{Name: "Milk", Quantity: 10, Category: "Dairy"})
	require.NoError(t, err)
	require.NotEmpty(t, milk.QRPayload)

	three := 3
	_, err = svc.Update(ctx, milk.ID, entity.ItemChanges{Quantity: &three})
	require.NoError(t, err)

	_, err = svc.Delete(ctx, milk.ID)
	require.NoError(t, err)

	movs, err := movements.ListByItem(ctx, milk.ID)
	require.NoError(t, err)
	require.Len(t, movs, 2, "los movimientos sobreviven al item")
	assert.Equal(t, entity.MovementOut, movs[0].Direction)
	assert.Equal(t, 7, movs[0].Quantity)
	assert.Equal(t, entity.MovementIn, movs[1].Direction)
	assert.Equal(t, 10, movs[1].Quantity)

	logs, err := audit.ListByItem(ctx, milk.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, entity.AuditDeleted, logs[0].Action)
	assert.Equal(t, entity.AuditUpdated, logs[1].Action)
	assert.Equal(t, entity.AuditCreated, logs[2].Action)

	upd := logs[1].Details.(entity.UpdatedDetails)
	assert.Equal(t, 10, upd.OldQuantity)

	trash, err := audit.ListDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	snap := trash[0].Details.(entity.DeletedDetails).DeletedProduct
	assert.Equal(t, 3, snap.Quantity)
	assert.Equal(t, milk.QRPayload, snap.QRPayload)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
