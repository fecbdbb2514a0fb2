// Package report genera el resumen de inventario en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Valor de inventario / Ajustes / Este mes          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Stock bajo (SKU | Producto | Precio | Stock)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Últimos ajustes (Fecha | SKU | Cant | Importe)      │
//	└─────────────────────────────────────────────────────────────┘
package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/Inventario-cliente/internal/domain/entity"
	"github.com/jhoicas/Inventario-cliente/internal/store"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// InventoryReport datos de entrada del PDF: un snapshot del store más los
// agregados ya calculados por las queries derivadas.
type InventoryReport struct {
	AppName     string
	GeneratedAt string // fecha ya formateada por el caller
	TotalValue  string // valor total del inventario, formateado
	Stats       store.AdjustmentStatsResult
	LowStock    []entity.Product
	Adjustments []entity.AdjustmentTransaction
}

// MarotoReportGenerator genera el resumen de inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(rep InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(rep))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("STOCK BAJO"))
	m.AddRows(lowStockHeaderRow())
	for _, r := range lowStockRows(rep.LowStock) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("ÚLTIMOS AJUSTES"))
	m.AddRows(adjustmentHeaderRow())
	for _, r := range adjustmentRows(rep.Adjustments) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("report: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(rep InventoryReport) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(rep.AppName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+rep.GeneratedAt, props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

func summaryRow(rep InventoryReport) core.Row {
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Color: color}),
		)
	}
	return row.New(14).Add(
		cell("Valor del inventario", "$"+rep.TotalValue, colorPrimary),
		cell("Entradas (unidades)", fmt.Sprintf("+%d", rep.Stats.StockIn), colorGreen),
		cell("Salidas (unidades)", fmt.Sprintf("-%d", rep.Stats.StockOut), colorRed),
		cell("Ajustes este mes", fmt.Sprintf("%d de %d", rep.Stats.ThisMonth, rep.Stats.Total), colorPrimary),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func lowStockHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("SKU", 2, align.Left),
		h("Producto", 6, align.Left),
		h("Precio", 2, align.Right),
		h("Stock", 2, align.Right),
	)
}

func lowStockRows(products []entity.Product) []core.Row {
	if len(products) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin productos por debajo del umbral", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(p.SKU, props.Text{Size: 8, Top: 1})),
			col.New(6).Add(text.New(p.Title, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New("$"+p.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprint(p.Stock), props.Text{Size: 8, Align: align.Right, Top: 1, Color: colorRed})),
		))
	}
	return result
}

func adjustmentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Fecha", 2, align.Left),
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Cant.", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

func adjustmentRows(adjustments []entity.AdjustmentTransaction) []core.Row {
	if len(adjustments) == 0 {
		return []core.Row{row.New(6).Add(col.New(12).Add(
			text.New("Sin transacciones cargadas", props.Text{Size: 8, Color: colorGray, Top: 1}),
		))}
	}
	result := make([]core.Row, 0, len(adjustments))
	for _, a := range adjustments {
		qtyColor := colorGreen
		qty := fmt.Sprintf("+%d", a.Qty)
		if a.Qty < 0 {
			qtyColor = colorRed
			qty = fmt.Sprint(a.Qty)
		}
		fecha := "—"
		if !a.CreatedAt.IsZero() {
			fecha = a.CreatedAt.Format("02/01/2006")
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(fecha, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(a.SKU, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(a.Title, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(qty, props.Text{Size: 8, Align: align.Right, Top: 1, Color: qtyColor})),
			col.New(2).Add(text.New("$"+a.Amount.Abs().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
