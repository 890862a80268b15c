package entity

import "github.com/shopspring/decimal"

// CategoriaPorDefecto se usa cuando el backend no informa categoría.
const CategoriaPorDefecto = "Otros"

// Producto es el view model del catálogo. El backend expone los campos en
// inglés (name, price, stock...) salvo la categoría, que según la versión
// llega como category o categoria.
type Producto struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	CriticalStock int             `json:"criticalStock"`
	Category      string          `json:"category,omitempty"`
	Categoria     string          `json:"categoria,omitempty"`
	Image         string          `json:"image,omitempty"`
}

// CategoriaNormalizada resuelve la categoría con el fallback
// category -> categoria -> "Otros".
func (p *Producto) CategoriaNormalizada() string {
	if p.Category != "" {
		return p.Category
	}
	if p.Categoria != "" {
		return p.Categoria
	}
	return CategoriaPorDefecto
}

// EsCritico indica si el producto está en o bajo su umbral de stock crítico.
func (p *Producto) EsCritico() bool {
	return p.Stock <= p.CriticalStock
}
