package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
)

// OrdenesClient operaciones de /ordenes.
type OrdenesClient struct {
	c *Client
}

// NewOrdenesClient construye el cliente de órdenes.
func NewOrdenesClient(c *Client) *OrdenesClient { return &OrdenesClient{c: c} }

// Comprar POST /ordenes/comprar. Devuelve la orden creada (con id asignado).
func (oc *OrdenesClient) Comprar(ctx context.Context, compra *dto.CompraRequest) (*entity.Orden, error) {
	var creada entity.Orden
	if err := oc.c.hacer(ctx, http.MethodPost, "/ordenes/comprar", nil, compra, &creada); err != nil {
		return nil, err
	}
	return &creada, nil
}

// Listar GET /ordenes (panel ADMIN/VENDEDOR).
func (oc *OrdenesClient) Listar(ctx context.Context) ([]entity.Orden, error) {
	var ordenes []entity.Orden
	if err := oc.c.hacer(ctx, http.MethodGet, "/ordenes", nil, nil, &ordenes); err != nil {
		return nil, err
	}
	return ordenes, nil
}

// ActualizarEstado PATCH /ordenes/{id}/estado?nuevoEstado=X.
func (oc *OrdenesClient) ActualizarEstado(ctx context.Context, id int64, nuevoEstado string) (*entity.Orden, error) {
	query := url.Values{"nuevoEstado": {nuevoEstado}}
	path := fmt.Sprintf("/ordenes/%d/estado", id)
	var actualizada entity.Orden
	if err := oc.c.hacer(ctx, http.MethodPatch, path, query, nil, &actualizada); err != nil {
		return nil, err
	}
	return &actualizada, nil
}
