package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre SQLite.
type MovementRepo struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) *MovementRepo {
	return &MovementRepo{db: db}
}

func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query, args, err := build(dialect.InsertMovement(sqlstore.NewMovementRecord(m)), "create movement")
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

func (r *MovementRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	query, args, err := build(dialect.ListMovementsByItem(itemID), "list movements")
	if err != nil {
		return nil, err
	}
	var rows []sqlstore.MovementRecord
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return sqlstore.MovementEntities(rows), nil
}
