package localstore

import (
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// SesionRepository implementa repository.SesionRepository sobre el Store.
type SesionRepository struct {
	store *Store
}

// NewSesionRepository construye el repositorio.
func NewSesionRepository(store *Store) *SesionRepository {
	return &SesionRepository{store: store}
}

// GuardarUsuario persiste el usuario logueado. El password nunca se guarda.
func (r *SesionRepository) GuardarUsuario(u *entity.Usuario) error {
	copia := *u
	copia.Password = ""
	return r.store.guardar(claveUsuario, &copia)
}

// ObtenerUsuario devuelve el usuario guardado o nil.
func (r *SesionRepository) ObtenerUsuario() (*entity.Usuario, error) {
	var u entity.Usuario
	ok, err := r.store.obtener(claveUsuario, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

// GuardarToken persiste el token bearer opaco.
func (r *SesionRepository) GuardarToken(token string) error {
	return r.store.guardar(claveToken, token)
}

// ObtenerToken devuelve el token guardado o "".
func (r *SesionRepository) ObtenerToken() (string, error) {
	var t string
	ok, err := r.store.obtener(claveToken, &t)
	if err != nil || !ok {
		return "", err
	}
	return t, nil
}

// Limpiar elimina usuario y token. Limpiar una sesión ya vacía es un no-op.
func (r *SesionRepository) Limpiar() error {
	if err := r.store.eliminar(claveUsuario); err != nil {
		return err
	}
	return r.store.eliminar(claveToken)
}
