package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/catalog"
	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
)

// TiendaHandler sirve el catálogo público y el formulario de contacto.
type TiendaHandler struct {
	productos *backend.ProductosClient
	contacto  *backend.ContactoClient
}

// NewTiendaHandler construye el handler.
func NewTiendaHandler(productos *backend.ProductosClient, contacto *backend.ContactoClient) *TiendaHandler {
	return &TiendaHandler{productos: productos, contacto: contacto}
}

// Productos lista el catálogo, opcionalmente filtrado por ?categoria=.
// Las facetas se recalculan con cada lista.
func (h *TiendaHandler) Productos(c *fiber.Ctx) error {
	lista, err := h.productos.Listar(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	categoria := c.Query("categoria", catalog.CategoriaTodas)
	return c.JSON(fiber.Map{
		"productos":  catalog.Filtrar(lista, categoria),
		"categorias": catalog.Categorias(lista),
		"categoria":  categoria,
	})
}

// Categorias devuelve solo las facetas.
func (h *TiendaHandler) Categorias(c *fiber.Ctx) error {
	lista, err := h.productos.Listar(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"categorias": catalog.Categorias(lista)})
}

// Contacto envía un mensaje {nombre, email, mensaje} al backend.
func (h *TiendaHandler) Contacto(c *fiber.Ctx) error {
	var in dto.ContactoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.Email == "" || in.Mensaje == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: "nombre, email y mensaje son obligatorios"})
	}
	if err := h.contacto.Enviar(c.UserContext(), &in); err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"ok": true})
}
