package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// AuditLogRepository define el puerto de persistencia del historial (solo append).
type AuditLogRepository interface {
	Create(ctx context.Context, entry *entity.AuditLogEntry) error
	ListByItem(ctx context.Context, itemID string) ([]*entity.AuditLogEntry, error)
	ListByAction(ctx context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error)
}
