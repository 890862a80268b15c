package dto

import (
	"github.com/shopspring/decimal"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// CompraItem línea de la orden en el payload de compra. El backend espera
// cantidad entera y precio numérico flotante.
type CompraItem struct {
	IDProducto string  `json:"idProducto"`
	Cantidad   int     `json:"cantidad"`
	Precio     float64 `json:"precio"`
}

// CompraRequest payload de POST /ordenes/comprar.
type CompraRequest struct {
	IDUsuario    int64        `json:"idUsuario"`
	Total        float64      `json:"total"`
	Calle        string       `json:"calle"`
	Comuna       string       `json:"comuna"`
	Region       string       `json:"region"`
	Indicaciones string       `json:"indicaciones"`
	Items        []CompraItem `json:"items"`
}

// DireccionEntrega campos de dirección que captura el formulario de checkout.
type DireccionEntrega struct {
	Calle        string `json:"calle"`
	Departamento string `json:"departamento,omitempty"`
	Region       string `json:"region"`
	Comuna       string `json:"comuna"`
	Indicaciones string `json:"indicaciones,omitempty"`
}

// ResultadoCheckout snapshot que acompaña tanto al éxito como al fallo de la
// compra; en fallo incluye además el mensaje reportado por el backend.
type ResultadoCheckout struct {
	Estado    string               `json:"estado"` // Exitoso | Fallido
	OrdenID   int64                `json:"ordenId,omitempty"`
	Direccion DireccionEntrega     `json:"direccion"`
	Items     []entity.ItemCarrito `json:"items"`
	Total     decimal.Decimal      `json:"total"`
	Mensaje   string               `json:"mensaje,omitempty"`
}
