package admin

import (
	"context"
	"fmt"

	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// CrearProducto crea el producto en el backend y lo agrega a la copia local.
func (uc *UseCase) CrearProducto(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	if p.ID == "" || p.Name == "" {
		return nil, fmt.Errorf("%w: id y nombre son obligatorios", domain.ErrValidacion)
	}
	if p.Stock < 0 || p.CriticalStock < 0 {
		return nil, fmt.Errorf("%w: stock no puede ser negativo", domain.ErrValidacion)
	}

	creado, err := uc.productosCli.Crear(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("admin: crear producto: %w", err)
	}

	uc.mu.Lock()
	uc.productos = append(uc.productos, *creado)
	uc.mu.Unlock()
	return creado, nil
}

// ActualizarProducto actualiza en el backend y reemplaza por id en la copia
// local; si el id no está, falla fuerte.
func (uc *UseCase) ActualizarProducto(ctx context.Context, id string, p *entity.Producto) (*entity.Producto, error) {
	actualizado, err := uc.productosCli.Actualizar(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("admin: actualizar producto %s: %w", id, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.productos {
		if uc.productos[i].ID == id {
			uc.productos[i] = *actualizado
			return actualizado, nil
		}
	}
	return nil, fmt.Errorf("%w: producto %s no está en la lista local", domain.ErrNoEncontrado, id)
}

// EliminarProducto borra en el backend (previa confirmación) y filtra la
// copia local.
func (uc *UseCase) EliminarProducto(ctx context.Context, id string, confirmado bool) error {
	if !confirmado {
		return domain.ErrConfirmacionRequerida
	}
	if err := uc.productosCli.Eliminar(ctx, id); err != nil {
		return fmt.Errorf("admin: eliminar producto %s: %w", id, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	nuevos := uc.productos[:0]
	for _, prod := range uc.productos {
		if prod.ID != id {
			nuevos = append(nuevos, prod)
		}
	}
	uc.productos = nuevos
	return nil
}
