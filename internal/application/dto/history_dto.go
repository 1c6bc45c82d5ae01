package dto

import (
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// MovementResponse entrada del libro de movimientos.
type MovementResponse struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	Type     string    `json:"type"` // in | out
	Quantity int       `json:"quantity"`
	Date     time.Time `json:"date"`
}

func NewMovementListResponse(list []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MovementResponse{
			ID:       m.ID,
			ItemID:   m.ItemID,
			Type:     string(m.Direction),
			Quantity: m.Quantity,
			Date:     m.Date,
		})
	}
	return out
}

// AuditLogResponse entrada del historial. Details conserva las claves de cada acción
// (createdWith, changes/oldQuantity, deletedProduct, newQuantity/type).
type AuditLogResponse struct {
	ID        string              `json:"id"`
	ItemID    string              `json:"item_id"`
	Action    string              `json:"action"`
	Details   entity.AuditDetails `json:"details" swaggertype:"object"`
	Timestamp time.Time           `json:"timestamp"`
}

func NewAuditLogListResponse(list []*entity.AuditLogEntry) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(list))
	for _, e := range list {
		out = append(out, AuditLogResponse{
			ID:        e.ID,
			ItemID:    e.ItemID,
			Action:    string(e.Action),
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
