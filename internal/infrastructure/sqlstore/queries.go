package sqlstore

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// Returning sufijo RETURNING con las columnas indicadas.
func Returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// ── inventory_items ──────────────────────────────────────────────────────────

func (d Dialect) InsertItem(r ItemRecord) sq.InsertBuilder {
	return d.Builder().Insert(TableItems).
		Columns(ItemColumns...).
		Values(r.ID, r.Name, r.Quantity, r.Category, r.QRPayload, r.CreatedAt, r.UpdatedAt)
}

func (d Dialect) SelectItems() sq.SelectBuilder {
	return d.Builder().Select(ItemColumns...).From(TableItems)
}

func (d Dialect) SelectItemByID(id string) sq.SelectBuilder {
	return d.SelectItems().Where(sq.Eq{"id": id})
}

// ListItems todos los items por nombre ascendente.
func (d Dialect) ListItems() sq.SelectBuilder {
	return d.SelectItems().OrderBy("name ASC", "id ASC")
}

// ListLowStock items con quantity <= threshold, primero los de menor cantidad.
func (d Dialect) ListLowStock(threshold int) sq.SelectBuilder {
	return d.SelectItems().Where(sq.LtOrEq{"quantity": threshold}).OrderBy("quantity ASC", "name ASC")
}

// UpdateItem aplica solo los campos presentes y siempre refresca updated_at.
func (d Dialect) UpdateItem(id string, c entity.ItemChanges, now time.Time) sq.UpdateBuilder {
	set := map[string]interface{}{"updated_at": now.UTC()}
	if c.Name != nil {
		set["name"] = *c.Name
	}
	if c.Quantity != nil {
		set["quantity"] = *c.Quantity
	}
	if c.Category != nil {
		set["category"] = *c.Category
	}
	return d.Builder().Update(TableItems).SetMap(set).Where(sq.Eq{"id": id})
}

// UpdateItemQRPayload reemplaza el payload QR; no lo usa la actualización parcial.
func (d Dialect) UpdateItemQRPayload(id, payload string, now time.Time) sq.UpdateBuilder {
	return d.Builder().Update(TableItems).
		Set("qr_payload", payload).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"id": id})
}

func (d Dialect) DeleteItem(id string) sq.DeleteBuilder {
	return d.Builder().Delete(TableItems).Where(sq.Eq{"id": id})
}

// ── movements ────────────────────────────────────────────────────────────────

func (d Dialect) InsertMovement(r MovementRecord) sq.InsertBuilder {
	return d.Builder().Insert(TableMovements).
		Columns(MovementColumns...).
		Values(r.ID, r.ItemID, r.Direction, r.Quantity, r.MovedAt)
}

// ListMovementsByItem más recientes primero; el orden de inserción desempata.
func (d Dialect) ListMovementsByItem(itemID string) sq.SelectBuilder {
	return d.Builder().Select(MovementColumns...).From(TableMovements).
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("moved_at DESC", d.InsertionOrder+" DESC")
}

// ── audit_logs ───────────────────────────────────────────────────────────────

func (d Dialect) InsertAudit(r AuditRecord) sq.InsertBuilder {
	return d.Builder().Insert(TableAuditLogs).
		Columns(AuditColumns...).
		Values(r.ID, r.ItemID, r.Action, r.Details, r.LoggedAt)
}

func (d Dialect) listAudit(where sq.Eq) sq.SelectBuilder {
	return d.Builder().Select(AuditColumns...).From(TableAuditLogs).
		Where(where).
		OrderBy("logged_at DESC", d.InsertionOrder+" DESC")
}

func (d Dialect) ListAuditByItem(itemID string) sq.SelectBuilder {
	return d.listAudit(sq.Eq{"item_id": itemID})
}

func (d Dialect) ListAuditByAction(action entity.AuditAction) sq.SelectBuilder {
	return d.listAudit(sq.Eq{"action": string(action)})
}

// ── users ────────────────────────────────────────────────────────────────────

func (d Dialect) InsertUser(r UserRecord) sq.InsertBuilder {
	return d.Builder().Insert(TableUsers).
		Columns(UserColumns...).
		Values(r.ID, r.Name, r.Email, r.PasswordHash, r.Role, r.CreatedAt, r.UpdatedAt)
}

func (d Dialect) SelectUser(where sq.Eq) sq.SelectBuilder {
	return d.Builder().Select(UserColumns...).From(TableUsers).Where(where)
}
