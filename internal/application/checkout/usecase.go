// Package checkout implementa el flujo de compra:
//
//	Idle → Validando → Enviando → {Exitoso, Fallido}
//
// Las guardas corren antes de tocar el backend; el carrito se relee del
// almacén (no del estado en memoria) para captar cambios concurrentes de otra
// pestaña. En éxito el carrito se vacía; en fallo queda intacto para
// reintentar.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/chile"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/domain/repository"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// Estados del flujo.
const (
	EstadoIdle      = "Idle"
	EstadoValidando = "Validando"
	EstadoEnviando  = "Enviando"
	EstadoExitoso   = "Exitoso"
	EstadoFallido   = "Fallido"
)

// UseCase flujo de checkout.
type UseCase struct {
	sesion      *session.UseCase
	carrito     *cart.UseCase
	carritoRepo repository.CarritoRepository
	ordenes     *backend.OrdenesClient
	log         *logger.Logger

	mu     sync.Mutex
	estado string
}

// New construye el flujo.
func New(sesion *session.UseCase, carrito *cart.UseCase, carritoRepo repository.CarritoRepository, ordenes *backend.OrdenesClient, log *logger.Logger) *UseCase {
	return &UseCase{
		sesion:      sesion,
		carrito:     carrito,
		carritoRepo: carritoRepo,
		ordenes:     ordenes,
		log:         log,
		estado:      EstadoIdle,
	}
}

// Estado devuelve el estado actual del flujo.
func (uc *UseCase) Estado() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.estado
}

func (uc *UseCase) transicion(estado string) {
	uc.mu.Lock()
	uc.estado = estado
	uc.mu.Unlock()
}

// Comprar valida, arma el payload y envía la orden al backend.
//
// Guardas (en orden): sin sesión → domain.ErrSinSesion; carrito releído vacío
// → domain.ErrCarritoVacio; dirección inválida → domain.ErrDireccionIncompleta.
// Todas dejan el flujo en Idle sin llamada al backend.
//
// En fallo del backend devuelve el snapshot Fallido junto con el error; el
// carrito no se toca.
func (uc *UseCase) Comprar(ctx context.Context, dir dto.DireccionEntrega) (*dto.ResultadoCheckout, error) {
	uc.transicion(EstadoValidando)

	usuario := uc.sesion.Actual()
	if usuario == nil {
		uc.transicion(EstadoIdle)
		return nil, domain.ErrSinSesion
	}

	// Relectura del almacén: otra pestaña pudo haber mutado el carrito.
	items, err := uc.carritoRepo.Obtener()
	if err != nil {
		uc.transicion(EstadoIdle)
		return nil, fmt.Errorf("checkout: releer carrito: %w", err)
	}
	items = soloConCantidad(items)
	if len(items) == 0 {
		uc.transicion(EstadoIdle)
		return nil, domain.ErrCarritoVacio
	}

	if err := validarDireccion(dir); err != nil {
		uc.transicion(EstadoIdle)
		return nil, err
	}

	total := cart.TotalDe(items)
	compra := &dto.CompraRequest{
		IDUsuario:    usuario.ID,
		Total:        total.InexactFloat64(),
		Calle:        dir.Calle,
		Comuna:       dir.Comuna,
		Region:       dir.Region,
		Indicaciones: dir.Indicaciones,
		Items:        make([]dto.CompraItem, 0, len(items)),
	}
	for _, it := range items {
		compra.Items = append(compra.Items, dto.CompraItem{
			IDProducto: it.ID,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio.InexactFloat64(),
		})
	}

	uc.transicion(EstadoEnviando)
	uc.log.Info().Int64("id_usuario", usuario.ID).Str("total", total.String()).
		Int("lineas", len(items)).Msg("enviando compra al backend")

	orden, err := uc.ordenes.Comprar(ctx, compra)
	if err != nil {
		uc.transicion(EstadoFallido)
		resultado := &dto.ResultadoCheckout{
			Estado:    EstadoFallido,
			Direccion: dir,
			Items:     items,
			Total:     total,
			Mensaje:   mensajeDeError(err),
		}
		uc.log.Error().Err(err).Msg("compra rechazada, el carrito se conserva")
		return resultado, err
	}

	// Limpieza: el carrito persistido se vacía y se notifica a los observadores.
	if err := uc.carrito.LimpiarTrasCompra(); err != nil {
		uc.log.Error().Err(err).Msg("vaciar carrito tras compra exitosa")
	}

	uc.transicion(EstadoExitoso)
	return &dto.ResultadoCheckout{
		Estado:    EstadoExitoso,
		OrdenID:   orden.ID,
		Direccion: dir,
		Items:     items,
		Total:     total,
	}, nil
}

// validarDireccion exige calle, región conocida y comuna elegida siempre que
// la región ofrezca comunas.
func validarDireccion(dir dto.DireccionEntrega) error {
	if dir.Calle == "" {
		return fmt.Errorf("%w: falta la calle", domain.ErrDireccionIncompleta)
	}
	comunas, ok := chile.Comunas(dir.Region)
	if !ok {
		return fmt.Errorf("%w: región %q desconocida", domain.ErrDireccionIncompleta, dir.Region)
	}
	if len(comunas) > 0 && dir.Comuna == "" {
		return fmt.Errorf("%w: seleccione una comuna", domain.ErrDireccionIncompleta)
	}
	return nil
}

func soloConCantidad(items []entity.ItemCarrito) []entity.ItemCarrito {
	out := make([]entity.ItemCarrito, 0, len(items))
	for _, it := range items {
		if it.Cantidad > 0 {
			out = append(out, it)
		}
	}
	return out
}

// mensajeDeError extrae el mensaje del backend o cae al genérico.
func mensajeDeError(err error) string {
	var berr *backend.ErrorBackend
	if errors.As(err, &berr) && berr.Mensaje != "" {
		return berr.Mensaje
	}
	return backend.MensajeGenerico
}
