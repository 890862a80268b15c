package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

func TestEstadoValido(t *testing.T) {
	for _, e := range []string{"Pendiente", "Enviado", "Completado", "Cancelado"} {
		assert.True(t, entity.EstadoValido(e), e)
	}
	assert.False(t, entity.EstadoValido("pendiente"), "sensible a mayúsculas")
	assert.False(t, entity.EstadoValido("Perdido"))
	assert.False(t, entity.EstadoValido(""))
}

func TestFechaOrden_FormatoLocalDateTimeDeSpring(t *testing.T) {
	var o entity.Orden
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "fecha": "2025-03-15T09:30:00", "total": 100}`), &o))
	assert.Equal(t, 15, o.Fecha.Time().Day())
	assert.Equal(t, 9, o.Fecha.Time().Hour())
}

func TestFechaOrden_FechaInvalidaRetornaError(t *testing.T) {
	var f entity.FechaOrden
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2025"`), &f))
}

func TestFechaOrden_NullYVacioSonFechaCero(t *testing.T) {
	var o entity.Orden
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "fecha": null}`), &o))
	assert.True(t, o.Fecha.Time().IsZero())
}

func TestFechaOrden_SerializaRFC3339(t *testing.T) {
	f := entity.FechaOrden(time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC))
	data, err := json.Marshal(f)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-15T09:30:00Z"`, string(data))
}

func TestOrden_DecodificaConUsuarioYItems(t *testing.T) {
	crudo := `{
		"id": 42,
		"usuario": {"id": 7, "correo": "c@gmail.com", "rol": "CLIENTE"},
		"total": 3600.50,
		"estado": "Pendiente",
		"items": [{"idProducto": "MAN1", "cantidad": 3, "precio": 1200}]
	}`
	var o entity.Orden
	require.NoError(t, json.Unmarshal([]byte(crudo), &o))

	assert.Equal(t, int64(42), o.ID)
	require.NotNil(t, o.Usuario)
	assert.Equal(t, int64(7), o.Usuario.ID)
	assert.True(t, o.Total.Equal(decimal.NewFromFloat(3600.50)))
	require.Len(t, o.Items, 1)
	assert.Equal(t, 3, o.Items[0].Cantidad)
}
