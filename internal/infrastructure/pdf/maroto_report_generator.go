// Package pdf genera la versión descargable del reporte del panel con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Huerto Hogar — Reportes y Estadísticas              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Ingresos | Pedidos pendientes | Stock crítico     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Stock actual | Mínimo permitido           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESGLOSE: órdenes por estado + total                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/huerto-hogar/tienda-web/internal/application/report"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorVerde = &props.Color{Red: 25, Green: 135, Blue: 84}
	colorGris  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo  = &props.Color{Red: 176, Green: 42, Blue: 55}
)

// MarotoReportGenerator implementa report.GeneradorPDF usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerarResumenPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerarResumenPDF(_ context.Context, resumen *report.Resumen) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Huerto Hogar — Reportes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorVerde, Thickness: 0.5}))
	m.AddRows(tarjetasRow(resumen))
	m.AddRows(line.NewRow(1, props.Line{Color: colorVerde, Thickness: 0.3}))

	if len(resumen.StockCritico) > 0 {
		m.AddRows(alertaStockHeaderRow())
		for _, r := range alertaStockRows(resumen.StockCritico) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}))
	}

	for _, r := range desgloseRows(resumen) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("Huerto Hogar", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorVerde, Top: 1,
			}),
			text.New("Reportes y Estadísticas", props.Text{
				Size: 10, Top: 8, Color: colorGris,
			}),
		),
	)
}

// tarjetasRow: los tres indicadores principales del reporte.
func tarjetasRow(resumen *report.Resumen) core.Row {
	return row.New(20).Add(
		tarjeta("Ingresos Totales (Histórico)", "$"+resumen.IngresosTotales.StringFixed(0), colorVerde),
		tarjeta("Pedidos Pendientes", strconv.Itoa(resumen.PorEstado.Pendiente), colorGris),
		tarjeta("Productos Stock Crítico", strconv.Itoa(len(resumen.StockCritico)), colorRojo),
	)
}

func tarjeta(titulo, valor string, color *props.Color) core.Col {
	return col.New(4).Add(
		text.New(titulo, props.Text{Size: 8, Color: colorGris, Top: 2}),
		text.New(valor, props.Text{Style: fontstyle.Bold, Size: 14, Color: color, Top: 8}),
	)
}

func alertaStockHeaderRow() core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New("Producto", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2})),
		col.New(3).Add(text.New("Stock Actual", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right})),
		col.New(3).Add(text.New("Mínimo Permitido", props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Align: align.Right})),
	)
}

func alertaStockRows(criticos []entity.Producto) []core.Row {
	rows := make([]core.Row, 0, len(criticos))
	for i := range criticos {
		p := criticos[i]
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(p.Name, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(strconv.Itoa(p.Stock), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorRojo, Style: fontstyle.Bold,
			})),
			col.New(3).Add(text.New(strconv.Itoa(p.CriticalStock), props.Text{
				Size: 9, Top: 1, Align: align.Right,
			})),
		))
	}
	return rows
}

func desgloseRows(resumen *report.Resumen) []core.Row {
	linea := func(etiqueta string, n int, destacar bool) core.Row {
		estilo := fontstyle.Normal
		if destacar {
			estilo = fontstyle.Bold
		}
		return row.New(7).Add(
			col.New(9).Add(text.New(etiqueta, props.Text{Size: 9, Top: 1, Style: estilo})),
			col.New(3).Add(text.New(strconv.Itoa(n), props.Text{Size: 9, Top: 1, Align: align.Right, Style: estilo})),
		)
	}
	return []core.Row{
		row.New(9).Add(col.New(12).Add(text.New("Desglose de Órdenes", props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorVerde,
		}))),
		linea("Pendientes", resumen.PorEstado.Pendiente, false),
		linea("Enviados", resumen.PorEstado.Enviado, false),
		linea("Completados", resumen.PorEstado.Completado, false),
		linea("Cancelados", resumen.PorEstado.Cancelado, false),
		linea("TOTAL PEDIDOS", resumen.TotalOrdenes, true),
	}
}
