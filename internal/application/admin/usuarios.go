package admin

import (
	"context"
	"fmt"

	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// ActualizarUsuario actualiza en el backend y reemplaza por id en la copia
// local. Solo lo expone la vista de gestión de usuarios (ADMIN).
func (uc *UseCase) ActualizarUsuario(ctx context.Context, id int64, u *entity.Usuario) (*entity.Usuario, error) {
	actualizado, err := uc.usuariosCli.Actualizar(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("admin: actualizar usuario %d: %w", id, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.usuarios {
		if uc.usuarios[i].ID == id {
			uc.usuarios[i] = *actualizado
			return actualizado, nil
		}
	}
	return nil, fmt.Errorf("%w: usuario %d no está en la lista local", domain.ErrNoEncontrado, id)
}

// EliminarUsuario borra en el backend (previa confirmación) y filtra la copia
// local. Eliminar la cuenta de la propia sesión está prohibido.
func (uc *UseCase) EliminarUsuario(ctx context.Context, id int64, confirmado bool) error {
	if !confirmado {
		return domain.ErrConfirmacionRequerida
	}
	if actual := uc.sesion.Actual(); actual != nil && actual.ID == id {
		return fmt.Errorf("%w: no puedes eliminar tu propia cuenta", domain.ErrValidacion)
	}
	if err := uc.usuariosCli.Eliminar(ctx, id); err != nil {
		return fmt.Errorf("admin: eliminar usuario %d: %w", id, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	nuevos := uc.usuarios[:0]
	for _, usr := range uc.usuarios {
		if usr.ID != id {
			nuevos = append(nuevos, usr)
		}
	}
	uc.usuarios = nuevos
	return nil
}

// ActualizarPerfil edita el usuario de la sesión actual vía el backend y, en
// éxito, reemplaza tanto el usuario almacenado como el de la sesión.
func (uc *UseCase) ActualizarPerfil(ctx context.Context, cambios *entity.Usuario) (*entity.Usuario, error) {
	actual := uc.sesion.Actual()
	if actual == nil {
		return nil, domain.ErrSinSesion
	}

	cambios.ID = actual.ID
	if cambios.Rol.Nombre == "" {
		cambios.Rol = actual.Rol
	}
	actualizado, err := uc.usuariosCli.Actualizar(ctx, actual.ID, cambios)
	if err != nil {
		return nil, fmt.Errorf("admin: actualizar perfil: %w", err)
	}
	if err := uc.sesion.ReemplazarUsuario(actualizado); err != nil {
		return nil, err
	}

	// Si la lista local de usuarios ya está cargada, mantenerla coherente.
	uc.mu.Lock()
	for i := range uc.usuarios {
		if uc.usuarios[i].ID == actualizado.ID {
			uc.usuarios[i] = *actualizado
			break
		}
	}
	uc.mu.Unlock()
	return actualizado, nil
}
