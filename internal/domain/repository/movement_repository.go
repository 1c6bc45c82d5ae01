package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del libro de movimientos (solo append).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// ListByItem devuelve los movimientos del item por fecha descendente; vacío si no hay.
	ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error)
}
