package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
)

// RequireAdminAccess protege el panel: exige sesión con rol ADMIN o VENDEDOR.
// Sin sesión se responde 401 (la UI redirige a login); con sesión de rol
// insuficiente, 403.
func RequireAdminAccess(sesion *session.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sesion.Actual() == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SIN_SESION", Message: "debes iniciar sesión"})
		}
		if !sesion.TienePermisoAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESO_DENEGADO", Message: "rol sin permisos de administración"})
		}
		return c.Next()
	}
}

// RequireAdmin restringe a rol ADMIN (gestión de usuarios y reportes).
func RequireAdmin(sesion *session.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sesion.EsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESO_DENEGADO", Message: "solo el rol ADMIN puede acceder"})
		}
		return c.Next()
	}
}
