// Package cart es el motor del carrito: mantiene la lista de líneas, aplica
// los topes de stock, persiste cada mutación y notifica a los suscriptores.
package cart

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/domain/repository"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// Suscriptor recibe una copia de las líneas tras cada mutación.
type Suscriptor func(items []entity.ItemCarrito)

// UseCase motor de carrito. Las invariantes tras toda mutación: ninguna línea
// con cantidad 0, cantidades nunca negativas y lo persistido igual a lo que
// hay en memoria.
type UseCase struct {
	repo repository.CarritoRepository
	log  *logger.Logger

	mu    sync.Mutex
	items []entity.ItemCarrito
	subs  []Suscriptor
}

// New construye el motor restaurando el carrito persistido.
func New(repo repository.CarritoRepository, log *logger.Logger) (*UseCase, error) {
	items, err := repo.Obtener()
	if err != nil {
		return nil, fmt.Errorf("cart: restaurar carrito: %w", err)
	}
	return &UseCase{repo: repo, log: log, items: items}, nil
}

// Suscribir registra un observador de cambios del carrito.
func (uc *UseCase) Suscribir(s Suscriptor) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.subs = append(uc.subs, s)
}

// Agregar añade el producto con cantidad 1 o incrementa la línea existente,
// respetando el stock publicado del producto.
func (uc *UseCase) Agregar(p *entity.Producto) error {
	if p.Stock <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrSinStock, p.Name)
	}

	uc.mu.Lock()
	nuevos := copiar(uc.items)
	idx := indiceDe(nuevos, p.ID)
	if idx >= 0 {
		if nuevos[idx].Cantidad >= p.Stock {
			uc.mu.Unlock()
			return fmt.Errorf("%w para %q", domain.ErrStockExcedido, p.Name)
		}
		nuevos[idx].Cantidad++
		nuevos[idx].Stock = p.Stock // refresca el tope con el stock más reciente
	} else {
		nuevos = append(nuevos, entity.NuevaLineaCarrito(p))
	}
	return uc.persistir(nuevos)
}

// Incrementar sube en 1 la cantidad de la línea, sin superar el stock
// registrado en ella.
func (uc *UseCase) Incrementar(id string) error {
	uc.mu.Lock()
	nuevos := copiar(uc.items)
	idx := indiceDe(nuevos, id)
	if idx < 0 {
		uc.mu.Unlock()
		return fmt.Errorf("%w: producto %s no está en el carrito", domain.ErrNoEncontrado, id)
	}
	if nuevos[idx].Cantidad+1 > nuevos[idx].Stock {
		uc.mu.Unlock()
		return fmt.Errorf("%w para %q", domain.ErrStockExcedido, nuevos[idx].Nombre)
	}
	nuevos[idx].Cantidad++
	return uc.persistir(nuevos)
}

// Decrementar baja en 1 la cantidad, con piso en 0; la línea en 0 se elimina
// al persistir.
func (uc *UseCase) Decrementar(id string) error {
	uc.mu.Lock()
	nuevos := copiar(uc.items)
	idx := indiceDe(nuevos, id)
	if idx < 0 {
		uc.mu.Unlock()
		return fmt.Errorf("%w: producto %s no está en el carrito", domain.ErrNoEncontrado, id)
	}
	if nuevos[idx].Cantidad > 0 {
		nuevos[idx].Cantidad--
	}
	return uc.persistir(nuevos)
}

// Quitar elimina la línea completa. Exige confirmación explícita: la
// eliminación nunca es silenciosa ni accidental.
func (uc *UseCase) Quitar(id string, confirmado bool) error {
	if !confirmado {
		return domain.ErrConfirmacionRequerida
	}
	uc.mu.Lock()
	idx := indiceDe(uc.items, id)
	if idx < 0 {
		uc.mu.Unlock()
		return fmt.Errorf("%w: producto %s no está en el carrito", domain.ErrNoEncontrado, id)
	}
	nuevos := make([]entity.ItemCarrito, 0, len(uc.items)-1)
	for _, it := range uc.items {
		if it.ID != id {
			nuevos = append(nuevos, it)
		}
	}
	return uc.persistir(nuevos)
}

// Vaciar elimina todas las líneas, previa confirmación explícita.
func (uc *UseCase) Vaciar(confirmado bool) error {
	if !confirmado {
		return domain.ErrConfirmacionRequerida
	}
	uc.mu.Lock()
	return uc.persistir([]entity.ItemCarrito{})
}

// LimpiarTrasCompra vacía el carrito sin confirmación. Solo lo usa el flujo
// de checkout tras una compra exitosa.
func (uc *UseCase) LimpiarTrasCompra() error {
	uc.mu.Lock()
	return uc.persistir([]entity.ItemCarrito{})
}

// Items devuelve una copia de las líneas actuales.
func (uc *UseCase) Items() []entity.ItemCarrito {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return copiar(uc.items)
}

// Total suma precio × cantidad sobre las líneas con cantidad > 0. Nunca se
// persiste: siempre se recalcula.
func (uc *UseCase) Total() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return TotalDe(uc.items)
}

// TotalDe calcula el total de cualquier lista de líneas.
func TotalDe(items []entity.ItemCarrito) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if it.Cantidad > 0 {
			total = total.Add(it.Subtotal())
		}
	}
	return total
}

// persistir aplica el filtro de cantidad 0, guarda, actualiza la memoria y
// notifica. Se llama con el mutex tomado y lo libera antes de notificar.
func (uc *UseCase) persistir(nuevos []entity.ItemCarrito) error {
	filtrados := make([]entity.ItemCarrito, 0, len(nuevos))
	for _, it := range nuevos {
		if it.Cantidad > 0 {
			filtrados = append(filtrados, it)
		}
	}

	if err := uc.repo.Guardar(filtrados); err != nil {
		uc.mu.Unlock()
		return fmt.Errorf("cart: persistir carrito: %w", err)
	}
	uc.items = filtrados

	snapshot := copiar(filtrados)
	subs := make([]Suscriptor, len(uc.subs))
	copy(subs, uc.subs)
	uc.mu.Unlock()

	for _, s := range subs {
		s(snapshot)
	}
	return nil
}

func copiar(items []entity.ItemCarrito) []entity.ItemCarrito {
	out := make([]entity.ItemCarrito, len(items))
	copy(out, items)
	return out
}

func indiceDe(items []entity.ItemCarrito, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
