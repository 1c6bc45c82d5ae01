// Package auditlog implementa el historial de acciones por item.
// Las entradas sobreviven al item: es la papelera de reciclaje de solo lectura.
package auditlog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
)

// Service registra y consulta el historial.
type Service struct {
	repo repository.AuditLogRepository
	now  func() time.Time
}

// NewService construye el servicio de historial.
func NewService(repo repository.AuditLogRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Append guarda una entrada; la acción la determina la variante de details.
func (s *Service) Append(ctx context.Context, itemID string, details entity.AuditDetails) (*entity.AuditLogEntry, error) {
	if details == nil {
		return nil, fmt.Errorf("auditlog: details es obligatorio")
	}
	e := &entity.AuditLogEntry{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Action:    details.Action(),
		Details:   details,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, domain.NewPersistenceError("auditlog.append", err)
	}
	return e, nil
}

// ListByItem historial de un item, más reciente primero.
func (s *Service) ListByItem(ctx context.Context, itemID string) ([]*entity.AuditLogEntry, error) {
	list, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, domain.NewPersistenceError("auditlog.list", err)
	}
	return nonNil(list), nil
}

// ListByAction todas las entradas de una acción, más reciente primero.
func (s *Service) ListByAction(ctx context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error) {
	if !action.Valid() {
		return nil, domain.NewValidationError(domain.FieldError{Field: "action", Message: "acción desconocida"})
	}
	list, err := s.repo.ListByAction(ctx, action)
	if err != nil {
		return nil, domain.NewPersistenceError("auditlog.list_by_action", err)
	}
	return nonNil(list), nil
}

// ListDeleted vista de items eliminados (no hay operación de restaurar).
func (s *Service) ListDeleted(ctx context.Context) ([]*entity.AuditLogEntry, error) {
	return s.ListByAction(ctx, entity.AuditDeleted)
}

func nonNil(list []*entity.AuditLogEntry) []*entity.AuditLogEntry {
	if list == nil {
		return []*entity.AuditLogEntry{}
	}
	return list
}
