package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. "Cancelado" es terminal: no admite más transiciones.
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnviado    = "Enviado"
	EstadoCompletado = "Completado"
	EstadoCancelado  = "Cancelado"
)

// EstadoValido indica si el string es uno de los estados conocidos.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoEnviado, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// FechaOrden tolera los formatos de fecha que emite el backend:
// RFC3339, LocalDateTime sin zona (2006-01-02T15:04:05) o solo fecha.
type FechaOrden time.Time

var formatosFecha = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON intenta cada formato conocido.
func (f *FechaOrden) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = FechaOrden(time.Time{})
		return nil
	}
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			*f = FechaOrden(t)
			return nil
		}
	}
	return fmt.Errorf("fecha de orden no reconocida: %q", s)
}

// MarshalJSON emite RFC3339.
func (f FechaOrden) MarshalJSON() ([]byte, error) {
	t := time.Time(f)
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// Time devuelve la fecha como time.Time.
func (f FechaOrden) Time() time.Time { return time.Time(f) }

// OrdenItem es una línea de la orden tal como la reporta el backend.
type OrdenItem struct {
	IDProducto string          `json:"idProducto"`
	Cantidad   int             `json:"cantidad"`
	Precio     decimal.Decimal `json:"precio"`
}

// Orden es el view model de una orden listada en el panel admin.
// La lista local es una copia; el backend es la fuente de verdad.
type Orden struct {
	ID           int64           `json:"id"`
	Usuario      *Usuario        `json:"usuario,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Estado       string          `json:"estado"`
	Fecha        FechaOrden      `json:"fecha,omitempty"`
	Calle        string          `json:"calle,omitempty"`
	Comuna       string          `json:"comuna,omitempty"`
	Region       string          `json:"region,omitempty"`
	Indicaciones string          `json:"indicaciones,omitempty"`
	Items        []OrdenItem     `json:"items,omitempty"`
}
