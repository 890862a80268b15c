package dto

import (
	"encoding/json"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// LoginRequest payload de POST /usuarios/login.
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// LoginResponse tolera las dos formas de respuesta del backend: el usuario
// envuelto con token ({usuario, token}) o el usuario plano sin token.
type LoginResponse struct {
	Usuario *entity.Usuario
	Token   string
}

// UnmarshalJSON intenta primero la forma envuelta y cae al usuario plano.
func (r *LoginResponse) UnmarshalJSON(b []byte) error {
	var envuelto struct {
		Usuario *entity.Usuario `json:"usuario"`
		Token   string          `json:"token"`
	}
	if err := json.Unmarshal(b, &envuelto); err == nil && envuelto.Usuario != nil {
		r.Usuario = envuelto.Usuario
		r.Token = envuelto.Token
		return nil
	}
	var plano entity.Usuario
	if err := json.Unmarshal(b, &plano); err != nil {
		return err
	}
	r.Usuario = &plano
	r.Token = ""
	return nil
}

// RegistroRequest formulario de registro, incluidos los campos de
// confirmación que solo se validan en el cliente.
type RegistroRequest struct {
	Nombre              string `json:"nombre"`
	Apellidos           string `json:"apellidos"`
	RUT                 string `json:"rut"`
	Correo              string `json:"correo"`
	ConfirmarCorreo     string `json:"confirmarCorreo"`
	Contrasena          string `json:"contrasena"`
	ConfirmarContrasena string `json:"confirmarContrasena"`
	Direccion           string `json:"direccion"`
	Telefono            string `json:"telefono"`
	Region              string `json:"region"`
	Comuna              string `json:"comuna"`
}

// SesionResponse estado de sesión que se expone a la UI local.
type SesionResponse struct {
	Autenticado  bool            `json:"autenticado"`
	Usuario      *entity.Usuario `json:"usuario,omitempty"`
	Rol          entity.Rol      `json:"rol"`
	PermisoAdmin bool            `json:"permisoAdmin"`
}
