package inventory_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
	"github.com/jhoicas/inventory-tracker/pkg/qrcode"
)

type stubRenderer struct {
	token string
}

func (r *stubRenderer) RenderItemLabel(_ context.Context, _ *entity.InventoryItem, scanToken string) ([]byte, error) {
	r.token = scanToken
	return []byte("%PDF-stub"), nil
}

func TestLabelUseCase_ScanQRYEtiqueta(t *testing.T) {
	f := newFixture(t)
	item := f.create(t, "Milk", 2, "Dairy")
	renderer := &stubRenderer{}
	uc := inventory.NewLabelUseCase(f.items, qrcode.NewEncoder(64), renderer)

	img, err := uc.ScanQR(context.Background(), item.ID)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(img))
	require.NoError(t, err)

	pdf, err := uc.Label(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(pdf))
	assert.Equal(t, "prod:"+item.ID, renderer.token)
}

func TestLabelUseCase_ItemInexistente(t *testing.T) {
	f := newFixture(t)
	uc := inventory.NewLabelUseCase(f.items, qrcode.NewEncoder(64), &stubRenderer{})

	_, err := uc.ScanQR(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Label(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLabelUseCase_ShareQR(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := inventory.NewLabelUseCase(f.items, qrcode.NewEncoder(64), nil)

	generated := f.create(t, "Milk", 2, "Dairy")
	img, err := uc.ShareQR(ctx, generated.ID)
	require.NoError(t, err)
	stored, err := qrcode.DecodeDataURI(generated.QRPayload)
	require.NoError(t, err)
	assert.Equal(t, stored, img, "sirve el payload guardado, no uno nuevo")

	custom, err := f.svc.Create(ctx, entity.ItemInput{Name: "Tea", Quantity: 1, Category: "Drinks", QRPayload: "https://shop.local/tea"})
	require.NoError(t, err)
	img, err = uc.ShareQR(ctx, custom.ID)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(img))
	require.NoError(t, err)

	_, err = uc.ShareQR(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
