package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/domain"
)

// responderError mapea errores de dominio a códigos HTTP de la app local.
// Ningún error se traga: todo termina en una respuesta con código y mensaje.
func responderError(c *fiber.Ctx, err error) error {
	type regla struct {
		centinela error
		status    int
		code      string
	}
	reglas := []regla{
		{domain.ErrValidacion, fiber.StatusBadRequest, "VALIDACION"},
		{domain.ErrConfirmacionRequerida, fiber.StatusBadRequest, "CONFIRMACION_REQUERIDA"},
		{domain.ErrDireccionIncompleta, fiber.StatusBadRequest, "DIRECCION_INCOMPLETA"},
		{domain.ErrCredenciales, fiber.StatusUnauthorized, "CREDENCIALES"},
		{domain.ErrSinSesion, fiber.StatusUnauthorized, "SIN_SESION"},
		{domain.ErrAutorizacion, fiber.StatusUnauthorized, "NO_AUTORIZADO"},
		{domain.ErrNoEncontrado, fiber.StatusNotFound, "NO_ENCONTRADO"},
		{domain.ErrSinStock, fiber.StatusConflict, "SIN_STOCK"},
		{domain.ErrStockExcedido, fiber.StatusConflict, "STOCK_EXCEDIDO"},
		{domain.ErrCarritoVacio, fiber.StatusConflict, "CARRITO_VACIO"},
		{domain.ErrOrdenCancelada, fiber.StatusConflict, "ORDEN_CANCELADA"},
		{domain.ErrRed, fiber.StatusBadGateway, "BACKEND"},
	}
	for _, r := range reglas {
		if errors.Is(err, r.centinela) {
			return c.Status(r.status).JSON(dto.ErrorResponse{Code: r.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNO", Message: err.Error()})
}
