package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Sesión y backend
	ErrCredenciales = errors.New("correo o contraseña incorrectos")
	ErrAutorizacion = errors.New("sesión expirada o inválida")
	ErrRed          = errors.New("error de conexión con el servidor")
	ErrNoEncontrado = errors.New("recurso no encontrado")

	// Carrito
	ErrSinStock      = errors.New("producto sin stock")
	ErrStockExcedido = errors.New("no hay más stock disponible")
	ErrCarritoVacio  = errors.New("el carrito está vacío")

	// Checkout
	ErrSinSesion           = errors.New("debes iniciar sesión para completar la compra")
	ErrDireccionIncompleta = errors.New("dirección de entrega incompleta")

	// Formularios y operaciones locales
	ErrValidacion            = errors.New("entrada inválida")
	ErrConfirmacionRequerida = errors.New("la operación requiere confirmación explícita")
	ErrOrdenCancelada        = errors.New("una orden cancelada no admite cambios de estado")
)
