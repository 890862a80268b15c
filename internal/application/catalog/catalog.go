// Package catalog deriva las facetas de categoría del catálogo y filtra
// productos. Todo es puro: se recalcula con cada lista, nada se persiste.
package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// CategoriaTodas es la faceta sintética que no filtra.
const CategoriaTodas = "Todas"

// Categorias devuelve el conjunto de categorías distintas (case-sensitive),
// ordenado alfabéticamente con colación española, con "Todas" al frente.
func Categorias(productos []entity.Producto) []string {
	vistas := make(map[string]struct{}, len(productos))
	distintas := make([]string, 0, len(productos))
	for i := range productos {
		cat := productos[i].CategoriaNormalizada()
		if _, ok := vistas[cat]; ok {
			continue
		}
		vistas[cat] = struct{}{}
		distintas = append(distintas, cat)
	}

	collate.New(language.Spanish).SortStrings(distintas)
	return append([]string{CategoriaTodas}, distintas...)
}

// Filtrar devuelve los productos cuya categoría normalizada coincide.
// "Todas" (o vacío) devuelve la lista completa.
func Filtrar(productos []entity.Producto, categoria string) []entity.Producto {
	if categoria == "" || categoria == CategoriaTodas {
		out := make([]entity.Producto, len(productos))
		copy(out, productos)
		return out
	}
	out := make([]entity.Producto, 0, len(productos))
	for i := range productos {
		if productos[i].CategoriaNormalizada() == categoria {
			out = append(out, productos[i])
		}
	}
	return out
}
