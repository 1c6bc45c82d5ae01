package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

// LabelUseCase genera la imagen QR de escaneo y la etiqueta imprimible de un item.
// El QR de escaneo lleva el token "prod:<id>", no el payload para compartir.
type LabelUseCase struct {
	repo     repository.InventoryRepository
	qr       QREncoder
	renderer LabelRenderer
}

// NewLabelUseCase construye el caso de uso. renderer puede ser nil si no se generan PDFs.
func NewLabelUseCase(repo repository.InventoryRepository, qr QREncoder, renderer LabelRenderer) *LabelUseCase {
	return &LabelUseCase{repo: repo, qr: qr, renderer: renderer}
}

// ScanQR devuelve el PNG con el token de escaneo del item.
func (uc *LabelUseCase) ScanQR(ctx context.Context, id string) ([]byte, error) {
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := uc.qr.PNG(qrcode.ScanToken(item.ID))
	if err != nil {
		return nil, fmt.Errorf("label: generar QR: %w", err)
	}
	return png, nil
}

// ShareQR devuelve el PNG del payload para compartir guardado en el item.
// Un payload propio del cliente (texto, no data URI) se rasteriza tal cual; un item
// sin payload usa la forma {id, name}.
func (uc *LabelUseCase) ShareQR(ctx context.Context, id string) ([]byte, error) {
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	payload := item.QRPayload
	if payload == "" {
		if payload, err = uc.qr.Encode(sharePayloadPostID{ID: item.ID, Name: item.Name}); err != nil {
			return nil, fmt.Errorf("label: generar QR: %w", err)
		}
	}
	if !strings.HasPrefix(payload, qrcode.DataURIPrefix) {
		png, err := uc.qr.PNG(payload)
		if err != nil {
			return nil, fmt.Errorf("label: generar QR: %w", err)
		}
		return png, nil
	}
	png, err := qrcode.DecodeDataURI(payload)
	if err != nil {
		return nil, fmt.Errorf("label: payload QR inválido: %w", err)
	}
	return png, nil
}

// Label devuelve la etiqueta PDF del item.
func (uc *LabelUseCase) Label(ctx context.Context, id string) ([]byte, error) {
	if uc.renderer == nil {
		return nil, fmt.Errorf("label: generador PDF no configurado")
	}
	item, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.renderer.RenderItemLabel(ctx, item, qrcode.ScanToken(item.ID))
	if err != nil {
		return nil, fmt.Errorf("label: generar PDF: %w", err)
	}
	return pdf, nil
}

func (uc *LabelUseCase) load(ctx context.Context, id string) (*entity.InventoryItem, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("inventory.get", err)
	}
	return item, nil
}
