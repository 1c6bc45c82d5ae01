package sqlstore

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// ItemRecord fila de inventory_items.
type ItemRecord struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Quantity  int       `db:"quantity"`
	Category  string    `db:"category"`
	QRPayload string    `db:"qr_payload"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ItemColumns en el orden de ItemRecord.
var ItemColumns = []string{"id", "name", "quantity", "category", "qr_payload", "created_at", "updated_at"}

func NewItemRecord(it *entity.InventoryItem) ItemRecord {
	return ItemRecord{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Category:  it.Category,
		QRPayload: it.QRPayload,
		CreatedAt: it.CreatedAt.UTC(),
		UpdatedAt: it.UpdatedAt.UTC(),
	}
}

func (r ItemRecord) Entity() *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:        r.ID,
		Name:      r.Name,
		Quantity:  r.Quantity,
		Category:  r.Category,
		QRPayload: r.QRPayload,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// ItemEntities convierte una lista de filas.
func ItemEntities(rows []ItemRecord) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Entity())
	}
	return out
}

// MovementRecord fila de movements.
type MovementRecord struct {
	ID        string    `db:"id"`
	ItemID    string    `db:"item_id"`
	Direction string    `db:"direction"`
	Quantity  int       `db:"quantity"`
	MovedAt   time.Time `db:"moved_at"`
}

var MovementColumns = []string{"id", "item_id", "direction", "quantity", "moved_at"}

func NewMovementRecord(m *entity.Movement) MovementRecord {
	return MovementRecord{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Direction: string(m.Direction),
		Quantity:  m.Quantity,
		MovedAt:   m.Date.UTC(),
	}
}

func (r MovementRecord) Entity() *entity.Movement {
	return &entity.Movement{
		ID:        r.ID,
		ItemID:    r.ItemID,
		Direction: entity.MovementDirection(r.Direction),
		Quantity:  r.Quantity,
		Date:      r.MovedAt.UTC(),
	}
}

func MovementEntities(rows []MovementRecord) []*entity.Movement {
	out := make([]*entity.Movement, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Entity())
	}
	return out
}

// AuditRecord fila de audit_logs; details es el JSON de la variante.
type AuditRecord struct {
	ID       string    `db:"id"`
	ItemID   string    `db:"item_id"`
	Action   string    `db:"action"`
	Details  string    `db:"details"`
	LoggedAt time.Time `db:"logged_at"`
}

var AuditColumns = []string{"id", "item_id", "action", "details", "logged_at"}

func NewAuditRecord(e *entity.AuditLogEntry) (AuditRecord, error) {
	if e.Details == nil {
		return AuditRecord{}, fmt.Errorf("audit record: details vacío")
	}
	raw, err := marshalDetails(e.Details)
	if err != nil {
		return AuditRecord{}, err
	}
	return AuditRecord{
		ID:       e.ID,
		ItemID:   e.ItemID,
		Action:   string(e.Action),
		Details:  raw,
		LoggedAt: e.Timestamp.UTC(),
	}, nil
}

func (r AuditRecord) Entity() (*entity.AuditLogEntry, error) {
	action := entity.AuditAction(r.Action)
	details, err := entity.DecodeAuditDetails(action, []byte(r.Details))
	if err != nil {
		return nil, fmt.Errorf("audit record %s: %w", r.ID, err)
	}
	return &entity.AuditLogEntry{
		ID:        r.ID,
		ItemID:    r.ItemID,
		Action:    action,
		Details:   details,
		Timestamp: r.LoggedAt.UTC(),
	}, nil
}

func AuditEntities(rows []AuditRecord) ([]*entity.AuditLogEntry, error) {
	out := make([]*entity.AuditLogEntry, 0, len(rows))
	for _, r := range rows {
		e, err := r.Entity()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// UserRecord fila de users.
type UserRecord struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

var UserColumns = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

func NewUserRecord(u *entity.User) UserRecord {
	return UserRecord{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (r UserRecord) Entity() *entity.User {
	return &entity.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt.UTC(),
		UpdatedAt:    r.UpdatedAt.UTC(),
	}
}
