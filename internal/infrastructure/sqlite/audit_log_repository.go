package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo historial sobre SQLite; details se guarda como texto JSON.
type AuditLogRepo struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

func (r *AuditLogRepo) Create(ctx context.Context, e *entity.AuditLogEntry) error {
	rec, err := sqlstore.NewAuditRecord(e)
	if err != nil {
		return err
	}
	query, args, err := build(dialect.InsertAudit(rec), "create audit log")
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.AuditLogEntry, error) {
	return r.list(ctx, dialect.ListAuditByItem(itemID), "list audit by item")
}

func (r *AuditLogRepo) ListByAction(ctx context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error) {
	return r.list(ctx, dialect.ListAuditByAction(action), "list audit by action")
}

func (r *AuditLogRepo) list(ctx context.Context, b sq.SelectBuilder, op string) ([]*entity.AuditLogEntry, error) {
	query, args, err := build(b, op)
	if err != nil {
		return nil, err
	}
	var rows []sqlstore.AuditRecord
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sqlstore.AuditEntities(rows)
}
