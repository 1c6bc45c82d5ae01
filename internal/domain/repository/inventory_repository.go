package repository

import (
	"context"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// Los métodos que reciben un ID devuelven domain.ErrNotFound si el item no existe.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	// Update aplica solo los campos presentes en changes y devuelve el item resultante.
	Update(ctx context.Context, id string, changes entity.ItemChanges) (*entity.InventoryItem, error)
	UpdateQRPayload(ctx context.Context, id, payload string) error
	// Delete elimina el item y devuelve su último estado conocido.
	Delete(ctx context.Context, id string) (*entity.InventoryItem, error)
	// List devuelve todos los items ordenados por nombre ascendente.
	List(ctx context.Context) ([]*entity.InventoryItem, error)
	// ListLowStock devuelve los items con quantity <= threshold, por cantidad y luego nombre.
	ListLowStock(ctx context.Context, threshold int) ([]*entity.InventoryItem, error)
}
