package entity

import "time"

// InventoryItem estado actual de un artículo del inventario.
// Quantity nunca es negativa; QRPayload queda siempre asignado después de crear.
type InventoryItem struct {
	ID        string
	Name      string
	Quantity  int
	Category  string
	QRPayload string // data URI PNG con el QR para compartir/imprimir
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemInput datos de creación tal como los envía el cliente.
type ItemInput struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Category  string `json:"category"`
	QRPayload string `json:"qrPayload,omitempty"`
}

// ItemChanges actualización parcial: solo los campos no nulos se aplican.
// Se guarda tal cual en el historial, por eso los campos ausentes se omiten del JSON.
// El payload QR no forma parte: solo lo escribe la creación (UpdateQRPayload).
type ItemChanges struct {
	Name     *string `json:"name,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ItemSnapshot copia serializable de un item, usada en el historial de eliminados.
type ItemSnapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Category  string    `json:"category"`
	QRPayload string    `json:"qrPayload,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot congela el estado actual del item.
func (i InventoryItem) Snapshot() ItemSnapshot {
	return ItemSnapshot{
		ID:        i.ID,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Category:  i.Category,
		QRPayload: i.QRPayload,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
