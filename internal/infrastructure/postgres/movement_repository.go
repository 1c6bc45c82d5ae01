package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query, args, err := build(dialect.InsertMovement(sqlstore.NewMovementRecord(m)), "create movement")
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByItem movimientos del item, más recientes primero.
func (r *MovementRepo) ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	query, args, err := build(dialect.ListMovementsByItem(itemID), "list movements")
	if err != nil {
		return nil, err
	}
	var rows []sqlstore.MovementRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return sqlstore.MovementEntities(rows), nil
}
