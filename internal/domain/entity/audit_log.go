package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// AuditAction acción del ciclo de vida registrada en el historial.
type AuditAction string

const (
	AuditCreated        AuditAction = "created"
	AuditUpdated        AuditAction = "updated"
	AuditDeleted        AuditAction = "deleted"
	AuditQuantityChange AuditAction = "quantity_change"
)

// Valid indica si la acción es una de las conocidas.
func (a AuditAction) Valid() bool {
	switch a {
	case AuditCreated, AuditUpdated, AuditDeleted, AuditQuantityChange:
		return true
	}
	return false
}

// AuditLogEntry registro inmutable del historial de un item.
// Es la única traza durable de los items eliminados.
type AuditLogEntry struct {
	ID        string
	ItemID    string
	Action    AuditAction
	Details   AuditDetails
	Timestamp time.Time
}

// AuditDetails payload de una entrada; cada acción tiene exactamente una forma.
type AuditDetails interface {
	Action() AuditAction
}

// CreatedDetails {createdWith: <entrada original>}.
type CreatedDetails struct {
	CreatedWith ItemInput `json:"createdWith"`
}

// UpdatedDetails {changes: <objeto parcial tal cual>, oldQuantity}.
type UpdatedDetails struct {
	Changes     ItemChanges `json:"changes"`
	OldQuantity int         `json:"oldQuantity"`
}

// DeletedDetails {deletedProduct: <snapshot previo a eliminar>}.
type DeletedDetails struct {
	DeletedProduct ItemSnapshot `json:"deletedProduct"`
}

// QuantityChangeDetails {newQuantity, type}.
type QuantityChangeDetails struct {
	NewQuantity int               `json:"newQuantity"`
	Type        MovementDirection `json:"type"`
}

func (CreatedDetails) Action() AuditAction        { return AuditCreated }
func (UpdatedDetails) Action() AuditAction        { return AuditUpdated }
func (DeletedDetails) Action() AuditAction        { return AuditDeleted }
func (QuantityChangeDetails) Action() AuditAction { return AuditQuantityChange }

// DecodeAuditDetails reconstruye la variante correspondiente a action desde JSON.
func DecodeAuditDetails(action AuditAction, raw []byte) (AuditDetails, error) {
	var (
		details AuditDetails
		err     error
	)
	switch action {
	case AuditCreated:
		var d CreatedDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case AuditUpdated:
		var d UpdatedDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case AuditDeleted:
		var d DeletedDetails
		err = json.Unmarshal(raw, &d)
		details = d
	case AuditQuantityChange:
		var d QuantityChangeDetails
		err = json.Unmarshal(raw, &d)
		details = d
	default:
		return nil, fmt.Errorf("audit: acción desconocida %q", action)
	}
	if err != nil {
		return nil, fmt.Errorf("audit: decodificar %s: %w", action, err)
	}
	return details, nil
}
