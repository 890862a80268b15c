package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/application/checkout"
	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
)

// CarritoHandler expone el carrito y el checkout.
type CarritoHandler struct {
	carrito   *cart.UseCase
	checkout  *checkout.UseCase
	productos *backend.ProductosClient
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(carrito *cart.UseCase, co *checkout.UseCase, productos *backend.ProductosClient) *CarritoHandler {
	return &CarritoHandler{carrito: carrito, checkout: co, productos: productos}
}

// Ver devuelve las líneas y el total recalculado.
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.carrito.Items(),
		"total": h.carrito.Total(),
	})
}

// Agregar añade un producto del catálogo al carrito. El producto se busca en
// el backend para validar contra el stock vigente.
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in struct {
		IDProducto string `json:"idProducto"`
	}
	if err := c.BodyParser(&in); err != nil || in.IDProducto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "idProducto es obligatorio"})
	}

	lista, err := h.productos.Listar(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	for i := range lista {
		if lista[i].ID == in.IDProducto {
			if err := h.carrito.Agregar(&lista[i]); err != nil {
				return responderError(c, err)
			}
			return h.Ver(c)
		}
	}
	return responderError(c, domain.ErrNoEncontrado)
}

// Incrementar sube en 1 la línea indicada.
func (h *CarritoHandler) Incrementar(c *fiber.Ctx) error {
	if err := h.carrito.Incrementar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return h.Ver(c)
}

// Decrementar baja en 1 la línea indicada (piso 0: la línea desaparece).
func (h *CarritoHandler) Decrementar(c *fiber.Ctx) error {
	if err := h.carrito.Decrementar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return h.Ver(c)
}

// Quitar elimina la línea; exige ?confirmar=true.
func (h *CarritoHandler) Quitar(c *fiber.Ctx) error {
	if err := h.carrito.Quitar(c.Params("id"), c.QueryBool("confirmar")); err != nil {
		return responderError(c, err)
	}
	return h.Ver(c)
}

// Vaciar elimina todas las líneas; exige ?confirmar=true.
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	if err := h.carrito.Vaciar(c.QueryBool("confirmar")); err != nil {
		return responderError(c, err)
	}
	return h.Ver(c)
}

// Comprar ejecuta el flujo de checkout. En éxito responde el snapshot
// Exitoso; si el backend rechaza la compra responde 502 con el snapshot
// Fallido (carrito intacto, la UI navega a la vista de pago fallido).
func (h *CarritoHandler) Comprar(c *fiber.Ctx) error {
	var dir dto.DireccionEntrega
	if err := c.BodyParser(&dir); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	resultado, err := h.checkout.Comprar(c.UserContext(), dir)
	if err != nil {
		if resultado != nil {
			return c.Status(fiber.StatusBadGateway).JSON(resultado)
		}
		// Guardas previas al envío: nunca se llamó al backend.
		var berr *backend.ErrorBackend
		if errors.As(err, &berr) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: berr.Mensaje})
		}
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resultado)
}
