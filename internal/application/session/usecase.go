// Package session es el controlador de sesión del cliente: restaura la sesión
// persistida al arrancar, ejecuta login/logout contra el backend y normaliza
// el rol en la frontera. También reacciona al hook global de des-autorización
// del cliente backend cerrando la sesión, sin importar qué llamada lo disparó.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/domain/repository"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
	"github.com/huerto-hogar/tienda-web/pkg/token"
)

// UseCase mantiene la sesión actual (a lo sumo una activa por proceso).
type UseCase struct {
	repo     repository.SesionRepository
	usuarios *backend.UsuariosClient
	log      *logger.Logger

	mu     sync.RWMutex
	actual *entity.Usuario
}

// New construye el controlador y registra el hook 401/403 en el cliente base:
// cualquier respuesta de autorización fallida fuerza el logout.
func New(repo repository.SesionRepository, usuarios *backend.UsuariosClient, client *backend.Client, log *logger.Logger) *UseCase {
	uc := &UseCase{repo: repo, usuarios: usuarios, log: log}
	client.AlQuedarNoAutorizado(func(status int) {
		uc.log.Warn().Int("status", status).Msg("sesión expirada o inválida, cerrando sesión")
		if err := uc.Logout(); err != nil {
			uc.log.Error().Err(err).Msg("cerrar sesión tras des-autorización")
		}
	})
	return uc
}

// Restore carga la sesión persistida sin ir al backend. Si el token guardado
// ya expiró se descarta todo, como si no hubiera sesión.
func (uc *UseCase) Restore() error {
	u, err := uc.repo.ObtenerUsuario()
	if err != nil {
		return fmt.Errorf("session: restaurar usuario: %w", err)
	}
	if u == nil {
		return nil
	}

	tok, err := uc.repo.ObtenerToken()
	if err != nil {
		return fmt.Errorf("session: restaurar token: %w", err)
	}
	if tok != "" {
		if vencido, err := token.Expirado(tok, time.Now()); err == nil && vencido {
			uc.log.Info().Str("correo", u.Correo).Msg("token guardado vencido, descartando sesión")
			return uc.Logout()
		}
	}

	uc.mu.Lock()
	uc.actual = u
	uc.mu.Unlock()
	uc.log.Info().Str("correo", u.Correo).Str("rol", string(u.RolNormalizado())).Msg("sesión restaurada")
	return nil
}

// Login autentica contra el backend, guarda usuario y token (si el backend lo
// emite) y deja la sesión activa.
//
// Errores: domain.ErrValidacion (campos vacíos), domain.ErrCredenciales
// (backend rechaza las credenciales), domain.ErrRed (resto).
func (uc *UseCase) Login(ctx context.Context, correo, password string) (*entity.Usuario, error) {
	if strings.TrimSpace(correo) == "" || password == "" {
		return nil, fmt.Errorf("%w: correo y contraseña son obligatorios", domain.ErrValidacion)
	}

	resp, err := uc.usuarios.Login(ctx, correo, password)
	if err != nil {
		if errors.Is(err, domain.ErrAutorizacion) {
			return nil, domain.ErrCredenciales
		}
		return nil, fmt.Errorf("%w: login", domain.ErrRed)
	}
	if resp.Usuario == nil {
		return nil, fmt.Errorf("%w: respuesta de login sin usuario", domain.ErrRed)
	}

	if resp.Token != "" {
		if err := uc.repo.GuardarToken(resp.Token); err != nil {
			return nil, fmt.Errorf("session: guardar token: %w", err)
		}
	}
	if err := uc.repo.GuardarUsuario(resp.Usuario); err != nil {
		return nil, fmt.Errorf("session: guardar usuario: %w", err)
	}

	uc.mu.Lock()
	uc.actual = resp.Usuario
	uc.mu.Unlock()

	uc.log.Info().Str("correo", resp.Usuario.Correo).
		Str("rol", string(resp.Usuario.RolNormalizado())).Msg("login exitoso")
	return resp.Usuario, nil
}

// Logout limpia sesión y almacén. Cerrar una sesión ya cerrada es un no-op.
func (uc *UseCase) Logout() error {
	uc.mu.Lock()
	uc.actual = nil
	uc.mu.Unlock()
	return uc.repo.Limpiar()
}

// Actual devuelve el usuario de la sesión o nil.
func (uc *UseCase) Actual() *entity.Usuario {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.actual
}

// ReemplazarUsuario actualiza el usuario de la sesión (ej. tras editar el
// perfil) y lo re-persiste.
func (uc *UseCase) ReemplazarUsuario(u *entity.Usuario) error {
	if err := uc.repo.GuardarUsuario(u); err != nil {
		return fmt.Errorf("session: guardar usuario: %w", err)
	}
	uc.mu.Lock()
	uc.actual = u
	uc.mu.Unlock()
	return nil
}

// Rol devuelve el rol normalizado de la sesión (UNKNOWN si no hay sesión).
func (uc *UseCase) Rol() entity.Rol {
	return uc.Actual().RolNormalizado()
}

// TienePermisoAdmin indica si la sesión puede entrar al panel de
// administración: rol ADMIN o VENDEDOR.
func (uc *UseCase) TienePermisoAdmin() bool {
	switch uc.Rol() {
	case entity.RolAdmin, entity.RolVendedor:
		return true
	}
	return false
}

// EsAdmin indica si la sesión tiene rol ADMIN.
func (uc *UseCase) EsAdmin() bool {
	return uc.Rol() == entity.RolAdmin
}

// TokenActual expone el token persistido para el TokenSource del cliente
// backend. El almacén es la fuente de verdad, igual que el localStorage
// original: se relee en cada petición.
func (uc *UseCase) TokenActual() string {
	tok, err := uc.repo.ObtenerToken()
	if err != nil {
		uc.log.Error().Err(err).Msg("leer token del almacén")
		return ""
	}
	return tok
}
