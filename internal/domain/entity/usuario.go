package entity

// Usuario representa la cuenta tal como la entrega el backend.
// Password solo viaja hacia el servidor (registro/edición); nunca se persiste localmente.
type Usuario struct {
	ID        int64    `json:"id,omitempty"`
	Nombre    string   `json:"nombre"`
	Apellido  string   `json:"apellido,omitempty"`
	RUT       string   `json:"rut,omitempty"`
	Correo    string   `json:"correo"`
	Password  string   `json:"password,omitempty"`
	Direccion string   `json:"direccion,omitempty"`
	Telefono  string   `json:"telefono,omitempty"`
	Region    string   `json:"region,omitempty"`
	Comuna    string   `json:"comuna,omitempty"`
	Rol       RolCrudo `json:"rol"`
}

// RolNormalizado devuelve el rol del usuario como enum.
func (u *Usuario) RolNormalizado() Rol {
	if u == nil {
		return RolDesconocido
	}
	return u.Rol.Normalizar()
}

// NombreCompleto concatena nombre y apellido para mostrar.
func (u *Usuario) NombreCompleto() string {
	if u.Apellido == "" {
		return u.Nombre
	}
	return u.Nombre + " " + u.Apellido
}
