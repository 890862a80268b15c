package backend

import (
	"context"
	"net/http"

	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// ProductosClient operaciones CRUD de /productos.
type ProductosClient struct {
	c *Client
}

// NewProductosClient construye el cliente de productos.
func NewProductosClient(c *Client) *ProductosClient { return &ProductosClient{c: c} }

// Listar GET /productos.
func (pc *ProductosClient) Listar(ctx context.Context) ([]entity.Producto, error) {
	var productos []entity.Producto
	if err := pc.c.hacer(ctx, http.MethodGet, "/productos", nil, nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

// Crear POST /productos.
func (pc *ProductosClient) Crear(ctx context.Context, p *entity.Producto) (*entity.Producto, error) {
	var creado entity.Producto
	if err := pc.c.hacer(ctx, http.MethodPost, "/productos", nil, p, &creado); err != nil {
		return nil, err
	}
	return &creado, nil
}

// Actualizar PUT /productos/{id}.
func (pc *ProductosClient) Actualizar(ctx context.Context, id string, p *entity.Producto) (*entity.Producto, error) {
	var actualizado entity.Producto
	if err := pc.c.hacer(ctx, http.MethodPut, "/productos/"+id, nil, p, &actualizado); err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar DELETE /productos/{id}.
func (pc *ProductosClient) Eliminar(ctx context.Context, id string) error {
	return pc.c.hacer(ctx, http.MethodDelete, "/productos/"+id, nil, nil, nil)
}
