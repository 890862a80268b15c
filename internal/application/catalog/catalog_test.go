package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huerto-hogar/tienda-web/internal/application/catalog"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

func productosDeMuestra() []entity.Producto {
	return []entity.Producto{
		{ID: "1", Name: "Manzana", Category: "Frutas"},
		{ID: "2", Name: "Zanahoria", Category: "Verduras"},
		{ID: "3", Name: "Plátano", Category: "Frutas"},
		{ID: "4", Name: "Miel", Categoria: "Orgánicos"}, // solo campo en español
		{ID: "5", Name: "Bolsa reutilizable"},           // sin categoría
	}
}

func TestCategorias_DedupConTodasAlFrente(t *testing.T) {
	cats := catalog.Categorias(productosDeMuestra())

	assert.Equal(t, catalog.CategoriaTodas, cats[0], `"Todas" siempre va primero`)
	assert.ElementsMatch(t, []string{"Todas", "Frutas", "Orgánicos", "Otros", "Verduras"}, cats)
}

func TestCategorias_OrdenAlfabeticoEspanol(t *testing.T) {
	productos := []entity.Producto{
		{ID: "1", Category: "Verduras"},
		{ID: "2", Category: "Ñoquis"},
		{ID: "3", Category: "Frutas"},
	}
	cats := catalog.Categorias(productos)
	// En colación española la Ñ va entre la N y la O, nunca al final como en
	// orden de bytes.
	assert.Equal(t, []string{"Todas", "Frutas", "Ñoquis", "Verduras"}, cats)
}

func TestCategorias_ListaVacia(t *testing.T) {
	assert.Equal(t, []string{catalog.CategoriaTodas}, catalog.Categorias(nil))
}

func TestFiltrar_PorCategoria(t *testing.T) {
	frutas := catalog.Filtrar(productosDeMuestra(), "Frutas")
	assert.Len(t, frutas, 2)
	for _, p := range frutas {
		assert.Equal(t, "Frutas", p.CategoriaNormalizada())
	}
}

func TestFiltrar_TodasYVacioDevuelvenTodo(t *testing.T) {
	todos := productosDeMuestra()
	assert.Len(t, catalog.Filtrar(todos, catalog.CategoriaTodas), len(todos))
	assert.Len(t, catalog.Filtrar(todos, ""), len(todos))
}

func TestFiltrar_FallbackDeCategoria(t *testing.T) {
	// category -> categoria -> "Otros"
	organicos := catalog.Filtrar(productosDeMuestra(), "Orgánicos")
	assert.Len(t, organicos, 1)
	assert.Equal(t, "Miel", organicos[0].Name)

	otros := catalog.Filtrar(productosDeMuestra(), entity.CategoriaPorDefecto)
	assert.Len(t, otros, 1)
	assert.Equal(t, "Bolsa reutilizable", otros[0].Name)
}

func TestFiltrar_CategoriaInexistenteDevuelveVacio(t *testing.T) {
	assert.Empty(t, catalog.Filtrar(productosDeMuestra(), "Lácteos"))
}
