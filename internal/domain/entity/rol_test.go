package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// El backend envía el rol a veces como objeto y a veces como string plano;
// ambas formas deben decodificarse.
func TestRolCrudo_DecodificaObjetoYString(t *testing.T) {
	casos := []struct {
		crudo    string
		esperado entity.Rol
	}{
		{`{"rol": {"nombre": "ADMIN"}}`, entity.RolAdmin},
		{`{"rol": "ADMIN"}`, entity.RolAdmin},
		{`{"rol": "admin"}`, entity.RolAdmin},
		{`{"rol": " Vendedor "}`, entity.RolVendedor},
		{`{"rol": {"nombre": "cliente"}}`, entity.RolCliente},
		{`{"rol": "supervisor"}`, entity.RolDesconocido},
		{`{"rol": ""}`, entity.RolDesconocido},
	}
	for _, c := range casos {
		var u entity.Usuario
		require.NoError(t, json.Unmarshal([]byte(c.crudo), &u), c.crudo)
		assert.Equal(t, c.esperado, u.RolNormalizado(), c.crudo)
	}
}

func TestRolCrudo_SerializaSiempreComoObjeto(t *testing.T) {
	u := entity.Usuario{Correo: "x@gmail.com", Rol: entity.RolCrudo{Nombre: "CLIENTE"}}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rol":{"nombre":"CLIENTE"}`,
		"el backend espera la forma objeto al crear usuarios")
}

func TestRolNormalizado_UsuarioNilEsDesconocido(t *testing.T) {
	var u *entity.Usuario
	assert.Equal(t, entity.RolDesconocido, u.RolNormalizado())
}

func TestNombreCompleto(t *testing.T) {
	u := entity.Usuario{Nombre: "Clara", Apellido: "Muñoz"}
	assert.Equal(t, "Clara Muñoz", u.NombreCompleto())

	sinApellido := entity.Usuario{Nombre: "Clara"}
	assert.Equal(t, "Clara", sinApellido.NombreCompleto())
}
