package entity

import (
	"encoding/json"
	"strings"
)

// Rol es el rol de usuario ya normalizado. Aguas abajo nunca se vuelve a
// inspeccionar la forma original del campo.
type Rol string

// Roles válidos.
const (
	RolCliente     Rol = "CLIENTE"
	RolVendedor    Rol = "VENDEDOR"
	RolAdmin       Rol = "ADMIN"
	RolDesconocido Rol = "UNKNOWN"
)

// RolCrudo acepta el rol tal como lo envía el backend: a veces un objeto
// {"nombre": "ADMIN"} y a veces el string plano "admin".
type RolCrudo struct {
	Nombre string
}

// UnmarshalJSON tolera ambas formas del campo rol.
func (r *RolCrudo) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		r.Nombre = s
		return nil
	}
	var obj struct {
		Nombre string `json:"nombre"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	r.Nombre = obj.Nombre
	return nil
}

// MarshalJSON emite siempre la forma objeto, que es la que el backend espera
// al crear usuarios (rol: {nombre: "CLIENTE"}).
func (r RolCrudo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Nombre string `json:"nombre"`
	}{Nombre: r.Nombre})
}

// Normalizar mapea el valor crudo al enum de roles. La comparación es
// case-insensitive; cualquier valor no reconocido es RolDesconocido.
func (r RolCrudo) Normalizar() Rol {
	switch strings.ToUpper(strings.TrimSpace(r.Nombre)) {
	case string(RolCliente):
		return RolCliente
	case string(RolVendedor):
		return RolVendedor
	case string(RolAdmin):
		return RolAdmin
	default:
		return RolDesconocido
	}
}
