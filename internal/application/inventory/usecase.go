package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

// DefaultLowStockThreshold umbral cuando el cliente no envía uno.
const DefaultLowStockThreshold = 5

// Payloads QR para compartir: antes de tener ID y después de tenerlo.
type sharePayloadPreID struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type sharePayloadPostID struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MutationService es el único punto que decide qué pasa, y en qué orden, al crear,
// actualizar, eliminar o cambiar la cantidad de un item.
//
// La escritura principal siempre va primero; si falla no se intenta ningún efecto
// derivado. Los appends al libro de movimientos y al historial no son transaccionales
// con la escritura principal: si fallan, la mutación queda aplicada y el error se
// devuelve como PersistenceError (y se registra para conciliación).
type MutationService struct {
	repo      repository.InventoryRepository
	movements MovementAppender
	audit     AuditAppender
	qr        QREncoder
	observer  Observer
	log       *logger.Logger
	now       func() time.Time
}

// NewMutationService construye el servicio. observer y log pueden ser nil.
func NewMutationService(
	repo repository.InventoryRepository,
	movements MovementAppender,
	audit AuditAppender,
	qr QREncoder,
	observer Observer,
	log *logger.Logger,
) *MutationService {
	if observer == nil {
		observer = NopObserver{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MutationService{
		repo:      repo,
		movements: movements,
		audit:     audit,
		qr:        qr,
		observer:  observer,
		log:       log.Component("inventory"),
		now:       time.Now,
	}
}

// Create crea el item, deriva su QR y registra el historial y el movimiento inicial.
func (s *MutationService) Create(ctx context.Context, in entity.ItemInput) (*entity.InventoryItem, error) {
	createdWith := in
	in.Name = normalizeText(in.Name)
	in.Category = normalizeText(in.Category)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Quantity:  in.Quantity,
		Category:  in.Category,
		QRPayload: in.QRPayload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if item.QRPayload == "" {
		payload, err := s.qr.Encode(sharePayloadPreID{Name: item.Name, Category: item.Category})
		if err != nil {
			return nil, fmt.Errorf("inventory: generar QR: %w", err)
		}
		item.QRPayload = payload
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, domain.NewPersistenceError("inventory.create", err)
	}
	s.observer.MutationApplied(OpCreate)

	// El item guardado puede volver sin payload; en ese caso se usa la forma con ID.
	if item.QRPayload == "" {
		payload, err := s.qr.Encode(sharePayloadPostID{ID: item.ID, Name: item.Name})
		if err == nil {
			err = s.repo.UpdateQRPayload(ctx, item.ID, payload)
		}
		if err != nil {
			return nil, s.derivedFailure(OpCreate, item.ID, "qr_payload", err)
		}
		item.QRPayload = payload
	}

	if _, err := s.audit.Append(ctx, item.ID, entity.CreatedDetails{CreatedWith: createdWith}); err != nil {
		return nil, s.derivedFailure(OpCreate, item.ID, "audit", err)
	}
	if item.Quantity > 0 {
		if err := s.appendMovement(ctx, OpCreate, item.ID, entity.MovementIn, item.Quantity); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Update aplica una actualización parcial. changes se registra en el historial tal cual
// lo envió el cliente; solo un cambio real de cantidad produce movimiento.
func (s *MutationService) Update(ctx context.Context, id string, changes entity.ItemChanges) (*entity.InventoryItem, error) {
	applied := normalizeChanges(changes)
	if err := validateChanges(applied); err != nil {
		return nil, err
	}

	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.get", err)
	}

	// Entre la lectura y la escritura el item pudo eliminarse: el repo devuelve ErrNotFound.
	updated, err := s.repo.Update(ctx, id, applied)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.update", err)
	}
	s.observer.MutationApplied(OpUpdate)

	details := entity.UpdatedDetails{Changes: changes, OldQuantity: old.Quantity}
	if _, err := s.audit.Append(ctx, id, details); err != nil {
		return nil, s.derivedFailure(OpUpdate, id, "audit", err)
	}

	if applied.Quantity != nil && *applied.Quantity != old.Quantity {
		direction, qty := entity.DirectionOf(old.Quantity, *applied.Quantity)
		if err := s.appendMovement(ctx, OpUpdate, id, direction, qty); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Delete elimina el item (borrado físico) y guarda su snapshot en el historial.
// La eliminación no genera movimiento.
func (s *MutationService) Delete(ctx context.Context, id string) (*entity.InventoryItem, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.delete", err)
	}
	s.observer.MutationApplied(OpDelete)

	if _, err := s.audit.Append(ctx, id, entity.DeletedDetails{DeletedProduct: deleted.Snapshot()}); err != nil {
		return nil, s.derivedFailure(OpDelete, id, "audit", err)
	}
	return deleted, nil
}

// SetQuantity fija la cantidad directamente. La dirección registrada sale del signo
// del delta real; la que envía el cliente es solo indicativa.
func (s *MutationService) SetQuantity(ctx context.Context, id string, newQuantity int, hint entity.MovementDirection) (*entity.InventoryItem, error) {
	if newQuantity < 0 {
		return nil, domain.NewValidationError(domain.FieldError{Field: "quantity", Message: "no puede ser negativa"})
	}
	if hint != "" && !hint.Valid() {
		return nil, domain.NewValidationError(domain.FieldError{Field: "type", Message: "debe ser in u out"})
	}

	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.get", err)
	}
	direction, change := entity.DirectionOf(old.Quantity, newQuantity)

	updated, err := s.repo.Update(ctx, id, entity.ItemChanges{Quantity: &newQuantity})
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.set_quantity", err)
	}
	s.observer.MutationApplied(OpSetQuantity)

	if change == 0 {
		return updated, nil
	}
	if hint != "" && hint != direction {
		s.log.Debug().Str("item_id", id).Str("hint", string(hint)).Str("direction", string(direction)).
			Msg("dirección enviada ignorada, se usa el signo del delta")
	}
	if err := s.appendMovement(ctx, OpSetQuantity, id, direction, change); err != nil {
		return nil, err
	}
	details := entity.QuantityChangeDetails{NewQuantity: newQuantity, Type: direction}
	if _, err := s.audit.Append(ctx, id, details); err != nil {
		return nil, s.derivedFailure(OpSetQuantity, id, "audit", err)
	}
	return updated, nil
}

// Get obtiene un item por ID (ErrNotFound si no existe).
func (s *MutationService) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.get", err)
	}
	return item, nil
}

// FindByScanToken resuelve un token "prod:<id>" leído desde la app.
func (s *MutationService) FindByScanToken(ctx context.Context, token string) (*entity.InventoryItem, error) {
	id, ok := qrcode.ParseScanToken(token)
	if !ok {
		return nil, domain.NewValidationError(domain.FieldError{Field: "token", Message: "formato esperado prod:<id>"})
	}
	return s.Get(ctx, id)
}

// List devuelve todos los items ordenados por nombre.
func (s *MutationService) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.list", err)
	}
	if list == nil {
		list = []*entity.InventoryItem{}
	}
	return list, nil
}

// LowStock devuelve los items con cantidad <= threshold.
func (s *MutationService) LowStock(ctx context.Context, threshold int) ([]*entity.InventoryItem, error) {
	if threshold < 0 {
		return nil, domain.NewValidationError(domain.FieldError{Field: "threshold", Message: "debe ser mayor o igual a 0"})
	}
	list, err := s.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.low_stock", err)
	}
	if list == nil {
		list = []*entity.InventoryItem{}
	}
	return list, nil
}

func (s *MutationService) appendMovement(ctx context.Context, op, itemID string, direction entity.MovementDirection, qty int) error {
	if _, err := s.movements.Append(ctx, itemID, direction, qty); err != nil {
		return s.derivedFailure(op, itemID, "movement", err)
	}
	s.observer.MovementAppended(direction, qty)
	return nil
}

// derivedFailure registra un append fallido después de aplicar la mutación principal.
// No hay reintento: el log es la pista para conciliar manualmente.
func (s *MutationService) derivedFailure(op, itemID, record string, err error) error {
	s.observer.DerivedAppendFailed(op, record)
	s.log.Error().Err(err).
		Str("op", op).
		Str("item_id", itemID).
		Str("record", record).
		Msg("mutación aplicada pero el historial quedó incompleto")
	return domain.NewPersistenceError(op+"."+record, err)
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeChanges(c entity.ItemChanges) entity.ItemChanges {
	out := c
	if c.Name != nil {
		v := normalizeText(*c.Name)
		out.Name = &v
	}
	if c.Category != nil {
		v := normalizeText(*c.Category)
		out.Category = &v
	}
	return out
}

func validateInput(in entity.ItemInput) error {
	var fields []domain.FieldError
	if in.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "es requerido"})
	}
	if in.Category == "" {
		fields = append(fields, domain.FieldError{Field: "category", Message: "es requerido"})
	}
	if in.Quantity < 0 {
		fields = append(fields, domain.FieldError{Field: "quantity", Message: "no puede ser negativa"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}

func validateChanges(c entity.ItemChanges) error {
	var fields []domain.FieldError
	if c.Name != nil && *c.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "no puede estar vacío"})
	}
	if c.Category != nil && *c.Category == "" {
		fields = append(fields, domain.FieldError{Field: "category", Message: "no puede estar vacía"})
	}
	if c.Quantity != nil && *c.Quantity < 0 {
		fields = append(fields, domain.FieldError{Field: "quantity", Message: "no puede ser negativa"})
	}
	if len(fields) > 0 {
		return domain.NewValidationError(fields...)
	}
	return nil
}
