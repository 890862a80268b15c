package localstore

import (
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// CarritoRepository implementa repository.CarritoRepository sobre el Store.
type CarritoRepository struct {
	store *Store
}

// NewCarritoRepository construye el repositorio.
func NewCarritoRepository(store *Store) *CarritoRepository {
	return &CarritoRepository{store: store}
}

// Guardar persiste la lista de líneas tal cual.
func (r *CarritoRepository) Guardar(items []entity.ItemCarrito) error {
	if items == nil {
		items = []entity.ItemCarrito{}
	}
	return r.store.guardar(claveCarrito, items)
}

// Obtener devuelve las líneas guardadas; lista vacía si no hay carrito.
func (r *CarritoRepository) Obtener() ([]entity.ItemCarrito, error) {
	var items []entity.ItemCarrito
	ok, err := r.store.obtener(claveCarrito, &items)
	if err != nil || !ok {
		return []entity.ItemCarrito{}, err
	}
	if items == nil {
		items = []entity.ItemCarrito{}
	}
	return items, nil
}

// Limpiar elimina el carrito persistido.
func (r *CarritoRepository) Limpiar() error {
	return r.store.eliminar(claveCarrito)
}
