package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/admin"
	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/application/report"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// AdminHandler expone el panel de administración: menú, dashboard, órdenes,
// inventario, usuarios, reportes y perfil.
type AdminHandler struct {
	panel    *admin.UseCase
	reportes *report.UseCase
	sesion   *session.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(panel *admin.UseCase, reportes *report.UseCase, sesion *session.UseCase) *AdminHandler {
	return &AdminHandler{panel: panel, reportes: reportes, sesion: sesion}
}

// Menu devuelve las pestañas permitidas para el rol de la sesión.
func (h *AdminHandler) Menu(c *fiber.Ctx) error {
	rol := h.sesion.Rol()
	return c.JSON(fiber.Map{
		"menu":          admin.MenuTabs(rol),
		"tabPorDefecto": admin.TabPorDefecto(rol),
		"rol":           rol,
	})
}

// Dashboard refresca el panel y devuelve listas y contadores.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	if err := h.panel.CargarPanel(c.UserContext()); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{
		"stats":     h.panel.Dashboard(),
		"productos": h.panel.Productos(),
		"ordenes":   h.panel.Ordenes(),
		"usuarios":  h.panel.Usuarios(),
	})
}

// ─────────────────────────────────────────────────────────────
// Órdenes
// ─────────────────────────────────────────────────────────────

// Ordenes lista las órdenes del panel filtradas por ?estado= (Todos por
// defecto), con los conteos por estado.
func (h *AdminHandler) Ordenes(c *fiber.Ctx) error {
	if c.QueryBool("recargar") {
		if err := h.panel.CargarPanel(c.UserContext()); err != nil {
			return responderError(c, err)
		}
	}
	ordenes, conteos := h.panel.OrdenesFiltradas(c.Query("estado", admin.FiltroTodos))
	return c.JSON(fiber.Map{"ordenes": ordenes, "conteos": conteos})
}

// CambiarEstadoOrden transiciona una orden a ?nuevoEstado=, previa
// confirmación.
func (h *AdminHandler) CambiarEstadoOrden(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id de orden inválido"})
	}
	orden, err := h.panel.CambiarEstadoOrden(c.UserContext(), int64(id), c.Query("nuevoEstado"), c.QueryBool("confirmar"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(orden)
}

// ─────────────────────────────────────────────────────────────
// Inventario
// ─────────────────────────────────────────────────────────────

// Productos lista la copia local del inventario.
func (h *AdminHandler) Productos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"productos": h.panel.Productos()})
}

// CrearProducto da de alta un producto.
func (h *AdminHandler) CrearProducto(c *fiber.Ctx) error {
	var p entity.Producto
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	creado, err := h.panel.CrearProducto(c.UserContext(), &p)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creado)
}

// ActualizarProducto edita el producto indicado.
func (h *AdminHandler) ActualizarProducto(c *fiber.Ctx) error {
	var p entity.Producto
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actualizado, err := h.panel.ActualizarProducto(c.UserContext(), c.Params("id"), &p)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(actualizado)
}

// EliminarProducto borra el producto; exige ?confirmar=true.
func (h *AdminHandler) EliminarProducto(c *fiber.Ctx) error {
	if err := h.panel.EliminarProducto(c.UserContext(), c.Params("id"), c.QueryBool("confirmar")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ─────────────────────────────────────────────────────────────
// Usuarios (solo ADMIN)
// ─────────────────────────────────────────────────────────────

// Usuarios lista la copia local de usuarios.
func (h *AdminHandler) Usuarios(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"usuarios": h.panel.Usuarios()})
}

// ActualizarUsuario edita el usuario indicado.
func (h *AdminHandler) ActualizarUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id de usuario inválido"})
	}
	var u entity.Usuario
	if err := c.BodyParser(&u); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actualizado, err := h.panel.ActualizarUsuario(c.UserContext(), int64(id), &u)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(actualizado)
}

// EliminarUsuario borra la cuenta indicada; exige ?confirmar=true y rechaza
// la cuenta de la propia sesión.
func (h *AdminHandler) EliminarUsuario(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "id de usuario inválido"})
	}
	if err := h.panel.EliminarUsuario(c.UserContext(), int64(id), c.QueryBool("confirmar")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ─────────────────────────────────────────────────────────────
// Reportes y perfil
// ─────────────────────────────────────────────────────────────

// Reportes devuelve el resumen derivado de las copias locales del panel.
func (h *AdminHandler) Reportes(c *fiber.Ctx) error {
	if err := h.panel.CargarPanel(c.UserContext()); err != nil {
		return responderError(c, err)
	}
	return c.JSON(report.Generar(h.panel.Productos(), h.panel.Ordenes()))
}

// ReportesPDF descarga el resumen como PDF.
func (h *AdminHandler) ReportesPDF(c *fiber.Ctx) error {
	if err := h.panel.CargarPanel(c.UserContext()); err != nil {
		return responderError(c, err)
	}
	pdf, err := h.reportes.ExportarPDF(c.UserContext(), h.panel.Productos(), h.panel.Ordenes())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-huerto-hogar.pdf"`)
	return c.Send(pdf)
}

// ActualizarPerfil edita los datos del usuario de la sesión actual.
func (h *AdminHandler) ActualizarPerfil(c *fiber.Ctx) error {
	var cambios entity.Usuario
	if err := c.BodyParser(&cambios); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	actualizado, err := h.panel.ActualizarPerfil(c.UserContext(), &cambios)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(actualizado)
}
