package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q   Querier
	now func() time.Time
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q, now: time.Now}
}

// Create persiste el item y lo refresca con lo que quedó guardado.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query, args, err := build(dialect.InsertItem(sqlstore.NewItemRecord(item)).
		Suffix(sqlstore.Returning(sqlstore.ItemColumns)), "create item")
	if err != nil {
		return err
	}
	var rec sqlstore.ItemRecord
	if err := pgxscan.Get(ctx, r.q, &rec, query, args...); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	*item = *rec.Entity()
	return nil
}

// GetByID obtiene un item por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.SelectItemByID(id), "get item")
	if err != nil {
		return nil, err
	}
	var rec sqlstore.ItemRecord
	if err := pgxscan.Get(ctx, r.q, &rec, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return rec.Entity(), nil
}

// Update aplica los cambios y devuelve el item resultante en una sola sentencia.
func (r *InventoryRepo) Update(ctx context.Context, id string, changes entity.ItemChanges) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.UpdateItem(id, changes, r.now()).
		Suffix(sqlstore.Returning(sqlstore.ItemColumns)), "update item")
	if err != nil {
		return nil, err
	}
	var rec sqlstore.ItemRecord
	if err := pgxscan.Get(ctx, r.q, &rec, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return rec.Entity(), nil
}

// UpdateQRPayload reemplaza el payload QR del item.
func (r *InventoryRepo) UpdateQRPayload(ctx context.Context, id, payload string) error {
	query, args, err := build(dialect.UpdateItemQRPayload(id, payload, r.now()), "update qr")
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update qr: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el item y devuelve la fila borrada.
func (r *InventoryRepo) Delete(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.DeleteItem(id).
		Suffix(sqlstore.Returning(sqlstore.ItemColumns)), "delete item")
	if err != nil {
		return nil, err
	}
	var rec sqlstore.ItemRecord
	if err := pgxscan.Get(ctx, r.q, &rec, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return rec.Entity(), nil
}

// List devuelve todos los items por nombre.
func (r *InventoryRepo) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	return r.selectItems(ctx, dialect.ListItems(), "list items")
}

// ListLowStock devuelve los items con quantity <= threshold.
func (r *InventoryRepo) ListLowStock(ctx context.Context, threshold int) ([]*entity.InventoryItem, error) {
	return r.selectItems(ctx, dialect.ListLowStock(threshold), "list low stock")
}

func (r *InventoryRepo) selectItems(ctx context.Context, b sq.SelectBuilder, op string) ([]*entity.InventoryItem, error) {
	query, args, err := build(b, op)
	if err != nil {
		return nil, err
	}
	var rows []sqlstore.ItemRecord
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sqlstore.ItemEntities(rows), nil
}
