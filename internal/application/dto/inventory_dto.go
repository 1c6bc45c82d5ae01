package dto

import (
	"time"

	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

// CreateItemRequest body para POST /api/inventories.
type CreateItemRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
	Category  string `json:"category" validate:"required,max=100"`
	QRPayload string `json:"qr_payload,omitempty"`
}

// ToInput convierte el body en la entrada del servicio.
func (r CreateItemRequest) ToInput() entity.ItemInput {
	in := entity.ItemInput{Name: r.Name, Category: r.Category, QRPayload: r.QRPayload}
	if r.Quantity != nil {
		in.Quantity = *r.Quantity
	}
	return in
}

// UpdateItemRequest body para PUT /api/inventories/:id; solo se aplican los campos enviados.
// El payload QR no se puede cambiar por aquí.
type UpdateItemRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Quantity *int    `json:"quantity" validate:"omitempty,min=0"`
	Category *string `json:"category" validate:"omitempty,max=100"`
}

func (r UpdateItemRequest) ToChanges() entity.ItemChanges {
	return entity.ItemChanges{Name: r.Name, Quantity: r.Quantity, Category: r.Category}
}

// SetQuantityRequest body para PATCH /api/inventories/:id/quantity.
// Type es indicativo: la dirección registrada sale del delta real.
type SetQuantityRequest struct {
	Quantity *int   `json:"quantity" validate:"required,min=0"`
	Type     string `json:"type" validate:"omitempty,oneof=in out"`
}

// ItemResponse salida de un item del inventario.
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Category  string    `json:"category"`
	QRPayload string    `json:"qr_payload"`
	ScanToken string    `json:"scan_token"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewItemResponse(it *entity.InventoryItem) ItemResponse {
	return ItemResponse{
		ID:        it.ID,
		Name:      it.Name,
		Quantity:  it.Quantity,
		Category:  it.Category,
		QRPayload: it.QRPayload,
		ScanToken: qrcode.ScanToken(it.ID),
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func NewItemListResponse(items []*entity.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResponse(it))
	}
	return out
}
