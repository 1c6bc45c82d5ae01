package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/sqlstore"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación sobre SQLite.
type InventoryRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db, now: time.Now}
}

// Create persiste el item.
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	query, args, err := build(dialect.InsertItem(sqlstore.NewItemRecord(item)), "create item")
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID.
func (r *InventoryRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return getItem(ctx, r.db, id)
}

// Update aplica los cambios y relee el item en la misma transacción.
func (r *InventoryRepo) Update(ctx context.Context, id string, changes entity.ItemChanges) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.UpdateItem(id, changes, r.now()), "update item")
	if err != nil {
		return nil, err
	}
	var updated *entity.InventoryItem
	err = inTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return domain.ErrNotFound
		}
		updated, err = getItem(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateQRPayload reemplaza el payload QR del item.
func (r *InventoryRepo) UpdateQRPayload(ctx context.Context, id, payload string) error {
	query, args, err := build(dialect.UpdateItemQRPayload(id, payload, r.now()), "update qr")
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update qr: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete lee el item y lo elimina en la misma transacción.
func (r *InventoryRepo) Delete(ctx context.Context, id string) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.DeleteItem(id), "delete item")
	if err != nil {
		return nil, err
	}
	var deleted *entity.InventoryItem
	err = inTx(ctx, r.db, func(tx *sql.Tx) error {
		deleted, err = getItem(ctx, tx, id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
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
	if err := sqlscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sqlstore.ItemEntities(rows), nil
}

func getItem(ctx context.Context, q sqlscan.Querier, id string) (*entity.InventoryItem, error) {
	query, args, err := build(dialect.SelectItemByID(id), "get item")
	if err != nil {
		return nil, err
	}
	var rec sqlstore.ItemRecord
	if err := sqlscan.Get(ctx, q, &rec, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return rec.Entity(), nil
}
