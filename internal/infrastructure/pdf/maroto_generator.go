// Package pdf genera los documentos PDF del back office con Maroto v2.
//
// Recibo de compra (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda │  N° de recibo + Fecha        │
//	│  CLIENTE: Nombre + estado de la compra                      │
//	│  TABLA: Cant | Artículo | P.Unit | Subtotal                 │
//	│  TOTAL                                                       │
//	│  FOOTER: QR con el identificador de la compra               │
//	└─────────────────────────────────────────────────────────────┘
//
// Informe de stock (A4): tabla de artículos con su estado y los totales de la colección.
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/internal/domain/entity"
	"github.com/jhoicas/stockboard/internal/domain/inventory"
	"github.com/jhoicas/stockboard/internal/domain/sales"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoGenerator implementa usecase.DocumentGenerator usando Maroto v2.
type MarotoGenerator struct {
	shopName string
}

var _ usecase.DocumentGenerator = (*MarotoGenerator)(nil)

// NewMarotoGenerator construye el generador. shopName aparece en la cabecera de cada documento.
func NewMarotoGenerator(shopName string) *MarotoGenerator {
	return &MarotoGenerator{shopName: nonEmpty(shopName, "Stockboard")}
}

func (g *MarotoGenerator) newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.shopName, true).
		Build()
	return maroto.New(cfg)
}

// PurchaseReceipt genera el recibo de la compra y devuelve sus bytes.
func (g *MarotoGenerator) PurchaseReceipt(_ context.Context, p *entity.Purchase) ([]byte, error) {
	m := g.newDocument("Reçu d'achat")

	m.AddRows(g.headerRow("REÇU D'ACHAT", p.ID, p.Date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeader([]column{
		{"Qté", 1, align.Center},
		{"Article", 6, align.Left},
		{"Prix unit.", 2, align.Right},
		{"Sous-total", 3, align.Right},
	}))
	for _, l := range p.Lines {
		subtotal := sales.LineTotal([]entity.PurchaseLine{l})
		m.AddRows(row.New(7).Add(
			cell(strconv.Itoa(l.Quantity), 1, align.Center),
			cell(l.Name, 6, align.Left),
			cell(money(l.UnitPrice), 2, align.Right),
			cell(money(subtotal), 3, align.Right),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("TOTAL :", money(p.Total)))

	m.AddRows(line.NewRow(3))
	m.AddRows(row.New(40).Add(
		col.New(3).Add(code.NewQr(p.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Identifiant de l'achat", props.Text{Style: fontstyle.Bold, Size: 8, Top: 4, Left: 3, Color: colorPrimary}),
			text.New(p.ID, props.Text{Size: 7, Top: 10, Left: 3, Color: colorGray}),
		),
	))

	return generate(m)
}

// StockReport genera el informe de inventario con una fila por artículo y los totales.
func (g *MarotoGenerator) StockReport(_ context.Context, items []entity.Item, totals inventory.Totals, at time.Time) ([]byte, error) {
	m := g.newDocument("État du stock")

	m.AddRows(g.headerRow("ÉTAT DU STOCK", fmt.Sprintf("%d articles", totals.Count), at))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeader([]column{
		{"Article", 4, align.Left},
		{"Catégorie", 2, align.Left},
		{"Qté", 1, align.Center},
		{"Min.", 1, align.Center},
		{"Valeur", 2, align.Right},
		{"Statut", 2, align.Center},
	}))
	for _, it := range items {
		status := inventory.StatusOf(it)
		statusProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if status != entity.StockIn {
			statusProps.Color = colorAlert
			statusProps.Style = fontstyle.Bold
		}
		m.AddRows(row.New(7).Add(
			cell(it.Name, 4, align.Left),
			cell(string(it.Category), 2, align.Left),
			cell(strconv.Itoa(it.Quantity), 1, align.Center),
			cell(strconv.Itoa(it.MinStock), 1, align.Center),
			cell(money(inventory.ItemValue(it)), 2, align.Right),
			col.New(2).Add(text.New(status.Label(), statusProps)),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow("Unités en stock :", strconv.Itoa(totals.TotalQuantity)))
	m.AddRows(totalRow("Stock faible / rupture :", fmt.Sprintf("%d / %d", totals.LowStock, totals.OutOfStock)))
	m.AddRows(totalRow("VALEUR DU STOCK :", money(totals.TotalValue)))

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y título + referencia + fecha (der).
func (g *MarotoGenerator) headerRow(title, ref string, date time.Time) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(g.shopName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(ref, props.Text{Size: 8, Align: align.Right, Top: 7}),
			text.New("Date : "+date.UTC().Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 13, Color: colorGray}),
		),
	)
}

func clientRow(p *entity.Purchase) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CLIENT", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(p.ClientName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
		col.New(4).Add(
			text.New("Statut : "+p.Status.Label(), props.Text{Size: 9, Align: align.Right, Top: 6}),
		),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cols []column) core.Row {
	r := row.New(8)
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

// totalRow: etiqueta y valor alineados a la derecha.
func totalRow(label, value string) core.Row {
	return row.New(7).Add(
		col.New(6),
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1})),
		col.New(3).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 1, Color: colorPrimary})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea con dos decimales. Ej: 2599.98 → "2599.98 EUR".
func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " EUR"
}
