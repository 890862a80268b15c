package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// UsuariosClient operaciones de /usuarios, incluido el login.
type UsuariosClient struct {
	c *Client
}

// NewUsuariosClient construye el cliente de usuarios.
func NewUsuariosClient(c *Client) *UsuariosClient { return &UsuariosClient{c: c} }

// Login POST /usuarios/login. El login es público pero el bearer, si existe,
// se envía igual; el backend lo ignora en rutas permitAll.
func (uc *UsuariosClient) Login(ctx context.Context, correo, password string) (*dto.LoginResponse, error) {
	var resp dto.LoginResponse
	in := dto.LoginRequest{Correo: correo, Password: password}
	if err := uc.c.hacer(ctx, http.MethodPost, "/usuarios/login", nil, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Registrar POST /usuarios.
func (uc *UsuariosClient) Registrar(ctx context.Context, u *entity.Usuario) (*entity.Usuario, error) {
	var creado entity.Usuario
	if err := uc.c.hacer(ctx, http.MethodPost, "/usuarios", nil, u, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// Listar GET /usuarios (solo la usa el panel ADMIN).
func (uc *UsuariosClient) Listar(ctx context.Context) ([]entity.Usuario, error) {
	var usuarios []entity.Usuario
	if err := uc.c.hacer(ctx, http.MethodGet, "/usuarios", nil, nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// Actualizar PUT /usuarios/{id}.
func (uc *UsuariosClient) Actualizar(ctx context.Context, id int64, u *entity.Usuario) (*entity.Usuario, error) {
	var actualizado entity.Usuario
	path := fmt.Sprintf("/usuarios/%d", id)
	if err := uc.c.hacer(ctx, http.MethodPut, path, nil, u, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar DELETE /usuarios/{id}.
func (uc *UsuariosClient) Eliminar(ctx context.Context, id int64) error {
	return uc.c.hacer(ctx, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil, nil, nil)
}
