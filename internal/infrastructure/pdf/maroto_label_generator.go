// Package pdf genera la etiqueta imprimible de un item del inventario.
//
// Layout (A5 vertical):
//
//	┌───────────────────────────────┐
//	│  NOMBRE                       │
//	│  Categoría                    │
//	│  ───────────────────────────  │
//	│            [ QR ]             │
//	│          prod:<id>            │
//	│  ───────────────────────────  │
//	│  Cantidad │ Actualizado       │
//	└───────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLabelGenerator implementa inventory.LabelRenderer usando Maroto v2.
type MarotoLabelGenerator struct {
	author string
}

var _ inventory.LabelRenderer = (*MarotoLabelGenerator)(nil)

// NewMarotoLabelGenerator construye el generador; author va a los metadatos del PDF.
func NewMarotoLabelGenerator(author string) *MarotoLabelGenerator {
	return &MarotoLabelGenerator{author: author}
}

// RenderItemLabel genera la etiqueta y devuelve sus bytes.
func (g *MarotoLabelGenerator) RenderItemLabel(_ context.Context, item *entity.InventoryItem, scanToken string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta "+item.Name, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(item))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(qrRows(scanToken)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(item))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(item *entity.InventoryItem) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(item.Category, "Sin categoría"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

// qrRows: QR con el token de escaneo y el token legible debajo.
func qrRows(scanToken string) []core.Row {
	return []core.Row{
		row.New(60).Add(
			col.New(2),
			col.New(8).Add(code.NewQr(scanToken, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(2),
		),
		row.New(6).Add(col.New(12).Add(
			text.New(scanToken, props.Text{Size: 6.5, Align: align.Center, Color: colorGray}),
		)),
	}
}

func footerRow(item *entity.InventoryItem) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("CANTIDAD", props.Text{Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1}),
			text.New(strconv.Itoa(item.Quantity), props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
		),
		col.New(6).Add(
			text.New("ACTUALIZADO", props.Text{Style: fontstyle.Bold, Size: 7, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(formatDate(item.UpdatedAt), props.Text{Size: 8, Align: align.Right, Top: 6, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("02/01/2006 15:04")
}
