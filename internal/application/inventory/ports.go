package inventory

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// MovementAppender puerto hacia el libro de movimientos (lo implementa *movement.Service).
type MovementAppender interface {
	Append(ctx context.Context, itemID string, direction entity.MovementDirection, quantity int) (*entity.Movement, error)
}

// AuditAppender puerto hacia el historial (lo implementa *auditlog.Service).
type AuditAppender interface {
	Append(ctx context.Context, itemID string, details entity.AuditDetails) (*entity.AuditLogEntry, error)
}

// QREncoder genera los payloads QR (lo implementa *qrcode.Encoder).
type QREncoder interface {
	// Encode serializa v y lo devuelve como imagen QR en data URI.
	Encode(v any) (string, error)
	// PNG codifica content tal cual y devuelve la imagen.
	PNG(content string) ([]byte, error)
}

// Operaciones de mutación reportadas al Observer.
const (
	OpCreate      = "create"
	OpUpdate      = "update"
	OpDelete      = "delete"
	OpSetQuantity = "set_quantity"
)

// Observer recibe eventos de las mutaciones (métricas). Debe ser seguro para uso concurrente.
type Observer interface {
	MutationApplied(op string)
	MovementAppended(direction entity.MovementDirection, quantity int)
	DerivedAppendFailed(op, record string)
}

// NopObserver descarta los eventos.
type NopObserver struct{}

func (NopObserver) MutationApplied(string)                          {}
func (NopObserver) MovementAppended(entity.MovementDirection, int) {}
func (NopObserver) DerivedAppendFailed(string, string)              {}

// LabelRenderer genera la etiqueta imprimible de un item (lo implementa el generador PDF).
type LabelRenderer interface {
	RenderItemLabel(ctx context.Context, item *entity.InventoryItem, scanToken string) ([]byte, error)
}
