// Package report deriva el reporte del panel: ingresos históricos, desglose
// de órdenes por estado y productos en stock crítico. Valores puros,
// recalculados en cada consulta.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// Resumen es el reporte completo de la pestaña Reportes.
type Resumen struct {
	IngresosTotales decimal.Decimal   `json:"ingresosTotales"` // ventas no canceladas
	PorEstado       DesglosePorEstado `json:"porEstado"`
	TotalOrdenes    int               `json:"totalOrdenes"`
	StockCritico    []entity.Producto `json:"stockCritico"`
}

// DesglosePorEstado conteo de órdenes por cada estado conocido.
type DesglosePorEstado struct {
	Pendiente  int `json:"pendiente"`
	Enviado    int `json:"enviado"`
	Completado int `json:"completado"`
	Cancelado  int `json:"cancelado"`
}

// Generar construye el resumen a partir de las copias locales del panel.
func Generar(productos []entity.Producto, ordenes []entity.Orden) *Resumen {
	ingresos := decimal.Zero
	var desglose DesglosePorEstado
	for _, o := range ordenes {
		if o.Estado != entity.EstadoCancelado {
			ingresos = ingresos.Add(o.Total)
		}
		switch o.Estado {
		case entity.EstadoPendiente:
			desglose.Pendiente++
		case entity.EstadoEnviado:
			desglose.Enviado++
		case entity.EstadoCompletado:
			desglose.Completado++
		case entity.EstadoCancelado:
			desglose.Cancelado++
		}
	}

	criticos := make([]entity.Producto, 0)
	for i := range productos {
		if productos[i].EsCritico() {
			criticos = append(criticos, productos[i])
		}
	}

	return &Resumen{
		IngresosTotales: ingresos,
		PorEstado:       desglose,
		TotalOrdenes:    len(ordenes),
		StockCritico:    criticos,
	}
}

// GeneradorPDF produce la versión descargable del resumen.
type GeneradorPDF interface {
	GenerarResumenPDF(ctx context.Context, resumen *Resumen) ([]byte, error)
}

// UseCase expone el reporte y su exportación.
type UseCase struct {
	generador GeneradorPDF
}

// New construye el caso de uso.
func New(generador GeneradorPDF) *UseCase {
	return &UseCase{generador: generador}
}

// ExportarPDF genera el PDF del resumen.
func (uc *UseCase) ExportarPDF(ctx context.Context, productos []entity.Producto, ordenes []entity.Orden) ([]byte, error) {
	resumen := Generar(productos, ordenes)
	pdf, err := uc.generador.GenerarResumenPDF(ctx, resumen)
	if err != nil {
		return nil, fmt.Errorf("report: exportar PDF: %w", err)
	}
	return pdf, nil
}
