package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var errStoreDown = errors.New("store down")

// memItems repositorio en memoria para los tests del servicio.
type memItems struct {
	mu         sync.Mutex
	items      map[string]entity.InventoryItem
	dropQR     bool // simula un almacenamiento que no guarda el payload en el insert
	failCreate bool
	// deleteOnUpdate elimina el item justo antes de escribir, como si otro cliente
	// lo borrara entre la lectura y la escritura.
	deleteOnUpdate bool
}

func newMemItems() *memItems { return &memItems{items: map[string]entity.InventoryItem{}} }

func (m *memItems) Create(_ context.Context, item *entity.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return errStoreDown
	}
	if m.dropQR {
		item.QRPayload = ""
	}
	m.items[item.ID] = *item
	return nil
}

func (m *memItems) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (m *memItems) Update(_ context.Context, id string, changes entity.ItemChanges) (*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteOnUpdate {
		delete(m.items, id)
	}
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	it = applyChanges(it, changes)
	m.items[id] = it
	return &it, nil
}

func (m *memItems) UpdateQRPayload(_ context.Context, id, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.QRPayload = payload
	m.items[id] = it
	return nil
}

func (m *memItems) Delete(_ context.Context, id string) (*entity.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.items, id)
	return &it, nil
}

func (m *memItems) List(_ context.Context) ([]*entity.InventoryItem, error) {
	return m.filter(func(entity.InventoryItem) bool { return true }, func(a, b entity.InventoryItem) bool {
		return a.Name < b.Name
	}), nil
}

func (m *memItems) ListLowStock(_ context.Context, threshold int) ([]*entity.InventoryItem, error) {
	return m.filter(func(it entity.InventoryItem) bool { return it.Quantity <= threshold }, func(a, b entity.InventoryItem) bool {
		if a.Quantity != b.Quantity {
			return a.Quantity < b.Quantity
		}
		return a.Name < b.Name
	}), nil
}

func (m *memItems) filter(keep func(entity.InventoryItem) bool, less func(a, b entity.InventoryItem) bool) []*entity.InventoryItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.InventoryItem
	for _, it := range m.items {
		if keep(it) {
			it := it
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(*out[i], *out[j]) })
	return out
}

// memMovements libro de movimientos en memoria; ListByItem devuelve el más reciente primero.
type memMovements struct {
	mu   sync.Mutex
	all  []*entity.Movement
	fail bool
}

func (m *memMovements) Create(_ context.Context, mv *entity.Movement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.all = append(m.all, mv)
	return nil
}

func (m *memMovements) ListByItem(_ context.Context, itemID string) ([]*entity.Movement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Movement
	for i := len(m.all) - 1; i >= 0; i-- {
		if m.all[i].ItemID == itemID {
			out = append(out, m.all[i])
		}
	}
	return out, nil
}

// memAudit historial en memoria, mismo orden que memMovements.
type memAudit struct {
	mu   sync.Mutex
	all  []*entity.AuditLogEntry
	fail bool
}

func (m *memAudit) Create(_ context.Context, e *entity.AuditLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStoreDown
	}
	m.all = append(m.all, e)
	return nil
}

func (m *memAudit) ListByItem(_ context.Context, itemID string) ([]*entity.AuditLogEntry, error) {
	return m.where(func(e *entity.AuditLogEntry) bool { return e.ItemID == itemID }), nil
}

func (m *memAudit) ListByAction(_ context.Context, action entity.AuditAction) ([]*entity.AuditLogEntry, error) {
	return m.where(func(e *entity.AuditLogEntry) bool { return e.Action == action }), nil
}

func (m *memAudit) where(keep func(*entity.AuditLogEntry) bool) []*entity.AuditLogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.AuditLogEntry
	for i := len(m.all) - 1; i >= 0; i-- {
		if keep(m.all[i]) {
			out = append(out, m.all[i])
		}
	}
	return out
}

// countingObserver cuenta los eventos recibidos.
type countingObserver struct {
	mu        sync.Mutex
	mutations map[string]int
	movements int
	failures  []string
}

func newCountingObserver() *countingObserver {
	return &countingObserver{mutations: map[string]int{}}
}

func (o *countingObserver) MutationApplied(op string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mutations[op]++
}

func (o *countingObserver) MovementAppended(entity.MovementDirection, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.movements++
}

func (o *countingObserver) DerivedAppendFailed(op, record string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, op+"."+record)
}

// applyChanges copia de lo que hace el UPDATE parcial de los repos SQL.
func applyChanges(item entity.InventoryItem, c entity.ItemChanges) entity.InventoryItem {
	if c.Name != nil {
		item.Name = *c.Name
	}
	if c.Quantity != nil {
		item.Quantity = *c.Quantity
	}
	if c.Category != nil {
		item.Category = *c.Category
	}
	return item
}
