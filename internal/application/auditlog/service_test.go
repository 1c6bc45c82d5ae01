package auditlog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/auditlog"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

type stubRepo struct {
	entries []*entity.AuditLogEntry
}

func (r *stubRepo) Create(_ context.Context, e *entity.AuditLogEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *stubRepo) ListByItem(_ context.Context, itemID string) ([]*entity.AuditLogEntry, error) {
	var out []*entity.AuditLogEntry
	for _, e := range r.entries {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubRepo) ListByAction(_ context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error) {
	var out []*entity.AuditLogEntry
	for _, e := range r.entries {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestAppend_AccionSaleDeLaVariante(t *testing.T) {
	repo := &stubRepo{}
	svc := auditlog.NewService(repo)

	e, err := svc.Append(context.Background(), "i1", entity.QuantityChangeDetails{NewQuantity: 2, Type: entity.MovementIn})
	require.NoError(t, err)
	assert.Equal(t, entity.AuditQuantityChange, e.Action)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())

	_, err = svc.Append(context.Background(), "i1", nil)
	assert.Error(t, err)
	assert.Len(t, repo.entries, 1)
}

func TestListDeleted(t *testing.T) {
	repo := &stubRepo{}
	svc := auditlog.NewService(repo)
	ctx := context.Background()

	_, err := svc.Append(ctx, "i1", entity.CreatedDetails{})
	require.NoError(t, err)
	_, err = svc.Append(ctx, "i1", entity.DeletedDetails{DeletedProduct: entity.ItemSnapshot{ID: "i1", Name: "Milk"}})
	require.NoError(t, err)

	trash, err := svc.ListDeleted(ctx)
	require.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, entity.AuditDeleted, trash[0].Action)
}

func TestListByAction_AccionInvalida(t *testing.T) {
	svc := auditlog.NewService(&stubRepo{})
	_, err := svc.ListByAction(context.Background(), "restored")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := svc.ListByItem(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
}
