package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo historial sobre PostgreSQL; details se guarda como JSONB.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create persiste una entrada.
func (r *AuditLogRepo) Create(ctx context.Context, e *entity.AuditLogEntry) error {
	rec, err := sqlstore.NewAuditRecord(e)
	if err != nil {
		return err
	}
	query, args, err := build(dialect.InsertAudit(rec), "create audit log")
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// ListByItem historial del item, más reciente primero.
func (r *AuditLogRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.AuditLogEntry, error) {
	return r.list(ctx, dialect.ListAuditByItem(itemID), "list audit by item")
}

// ListByAction entradas de una acción, más reciente primero.
func (r *AuditLogRepo) ListByAction(ctx context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error) {
	return r.list(ctx, dialect.ListAuditByAction(action), "list audit by action")
}

func (r *AuditLogRepo) list(ctx context.Context, b sq.SelectBuilder, op string) ([]*entity.AuditLogEntry, error) {
	query, args, err := build(b, op)
	if err != nil {
		return nil, err
	}
	var rows []sqlstore.AuditRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sqlstore.AuditEntities(rows)
}
