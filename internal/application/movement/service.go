// Package movement implementa el libro de movimientos de stock (solo append).
package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// Service registra y consulta movimientos. No valida el signo de la cantidad:
// quien llama garantiza que sea el valor absoluto del delta.
type Service struct {
	repo repository.MovementRepository
	now  func() time.Time
}

// NewService construye el servicio del libro de movimientos.
func NewService(repo repository.MovementRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append guarda un movimiento con ID y fecha asignados por el servidor.
func (s *Service) Append(ctx context.Context, itemID string, direction entity.MovementDirection, quantity int) (*entity.Movement, error) {
	m := &entity.Movement{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Direction: direction,
		Quantity:  quantity,
		Date:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, domain.NewPersistenceError("movement.append", err)
	}
	return m, nil
}

// ListByItem devuelve los movimientos del item, más recientes primero.
// Un ID desconocido produce una lista vacía, nunca un error.
func (s *Service) ListByItem(ctx context.Context, itemID string) ([]*entity.Movement, error) {
	list, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, domain.NewPersistenceError("movement.list", err)
	}
	if list == nil {
		list = []*entity.Movement{}
	}
	return list, nil
}
