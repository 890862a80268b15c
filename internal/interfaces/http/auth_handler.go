package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/admin"
	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
)

// AuthHandler maneja login, registro, logout y el estado de sesión.
type AuthHandler struct {
	sesion *session.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(sesion *session.UseCase) *AuthHandler {
	return &AuthHandler{sesion: sesion}
}

// Login autentica y deja la sesión activa. La respuesta incluye a dónde debe
// navegar la UI: el panel para ADMIN/VENDEDOR, la tienda para el resto.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	usuario, err := h.sesion.Login(c.UserContext(), in.Correo, in.Password)
	if err != nil {
		return responderError(c, err)
	}

	destino := "/"
	if h.sesion.TienePermisoAdmin() {
		destino = "/administrador"
	}
	return c.JSON(fiber.Map{
		"usuario":      usuario,
		"rol":          usuario.RolNormalizado(),
		"permisoAdmin": h.sesion.TienePermisoAdmin(),
		"destino":      destino,
	})
}

// Registro crea una cuenta nueva con rol CLIENTE.
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	creado, err := h.sesion.Registrar(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

// Logout cierra la sesión; cerrar una sesión inexistente también responde 200.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sesion.Logout(); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Sesion devuelve el estado actual de la sesión para la UI.
func (h *AuthHandler) Sesion(c *fiber.Ctx) error {
	usuario := h.sesion.Actual()
	resp := dto.SesionResponse{
		Autenticado:  usuario != nil,
		Usuario:      usuario,
		Rol:          h.sesion.Rol(),
		PermisoAdmin: h.sesion.TienePermisoAdmin(),
	}
	if resp.PermisoAdmin {
		return c.JSON(fiber.Map{
			"sesion":        resp,
			"menu":          admin.MenuTabs(resp.Rol),
			"tabPorDefecto": admin.TabPorDefecto(resp.Rol),
		})
	}
	return c.JSON(fiber.Map{"sesion": resp})
}
