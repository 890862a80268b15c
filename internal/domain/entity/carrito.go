package entity

import "github.com/shopspring/decimal"

// ItemCarrito es una línea del carrito persistido localmente.
// El esquema JSON replica el que el storefront siempre guardó en el navegador.
type ItemCarrito struct {
	ID          string          `json:"id"` // id del producto; único dentro del carrito
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Cantidad    int             `json:"cantidad"`
	Imagen      string          `json:"imagen,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
	Stock       int             `json:"stock"` // stock conocido al agregar; tope para incrementos
}

// Subtotal = precio × cantidad.
func (i ItemCarrito) Subtotal() decimal.Decimal {
	return i.Precio.Mul(decimal.NewFromInt(int64(i.Cantidad)))
}

// NuevaLineaCarrito normaliza un producto del catálogo a línea de carrito con cantidad 1.
func NuevaLineaCarrito(p *Producto) ItemCarrito {
	imagen := p.Image
	if imagen == "" {
		imagen = "default.png"
	}
	return ItemCarrito{
		ID:          p.ID,
		Nombre:      p.Name,
		Precio:      p.Price,
		Cantidad:    1,
		Imagen:      imagen,
		Descripcion: p.Description,
		Stock:       p.Stock,
	}
}
