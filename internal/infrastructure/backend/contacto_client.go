package backend

import (
	"context"
	"net/http"

	"github.com/huerto-hogar/tienda-web/internal/application/dto"
)

// ContactoClient operación de /contacto.
type ContactoClient struct {
	c *Client
}

// NewContactoClient construye el cliente de contacto.
func NewContactoClient(c *Client) *ContactoClient { return &ContactoClient{c: c} }

// Enviar POST /contacto. El backend responde vacío o un ack sin cuerpo útil.
func (cc *ContactoClient) Enviar(ctx context.Context, msg *dto.ContactoRequest) error {
	return cc.c.hacer(ctx, http.MethodPost, "/contacto", nil, msg, nil)
}
