package chile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huerto-hogar/tienda-web/internal/domain/chile"
)

func TestRegiones_SonDieciseisYEnOrden(t *testing.T) {
	regiones := chile.Regiones()
	require.Len(t, regiones, 16)
	assert.Equal(t, "Arica y Parinacota", regiones[0].Nombre)
	assert.Equal(t, "Magallanes y de la Antártica Chilena", regiones[15].Nombre)
}

func TestComunas_RegionConocida(t *testing.T) {
	comunas, ok := chile.Comunas("Metropolitana de Santiago")
	require.True(t, ok)
	assert.Contains(t, comunas, "Maipú")
	assert.Contains(t, comunas, "Ñuñoa")
}

func TestComunas_RegionDesconocida(t *testing.T) {
	comunas, ok := chile.Comunas("Narnia")
	assert.False(t, ok)
	assert.Nil(t, comunas)
}

func TestRegionValida(t *testing.T) {
	assert.True(t, chile.RegionValida("Valparaíso"))
	assert.False(t, chile.RegionValida("valparaíso"), "la comparación es exacta")
	assert.False(t, chile.RegionValida(""))
}

func TestComunaValida(t *testing.T) {
	assert.True(t, chile.ComunaValida("Biobío", "Concepción"))
	assert.False(t, chile.ComunaValida("Biobío", "Maipú"), "comuna de otra región")
	assert.False(t, chile.ComunaValida("Narnia", "Concepción"))
}

// La tabla devuelta es una copia: mutarla no debe afectar a la original.
func TestRegiones_DevuelveCopia(t *testing.T) {
	regiones := chile.Regiones()
	regiones[0].Nombre = "Mutada"
	assert.Equal(t, "Arica y Parinacota", chile.Regiones()[0].Nombre)
}
