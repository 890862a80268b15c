// Package backend implementa el cliente del backend REST remoto de la tienda
// (/api/v1/...). Una función por operación, bearer opcional y un hook global
// que se dispara ante cualquier respuesta 401/403, venga de donde venga la
// llamada.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// TokenSource entrega el token bearer vigente, o "" si no hay sesión.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapta una función a TokenSource.
type TokenSourceFunc func() string

// Token implementa TokenSource.
func (f TokenSourceFunc) Token() string { return f() }

// HookNoAutorizado se invoca cuando el backend responde 401 o 403,
// independiente de qué operación originó la llamada.
type HookNoAutorizado func(status int)

// ErrorBackend es el error reportado por el servidor remoto.
type ErrorBackend struct {
	Status  int
	Mensaje string
}

// MensajeGenerico se usa cuando el backend no entrega detalle del error.
const MensajeGenerico = "Error desconocido"

// Error implementa error.
func (e *ErrorBackend) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Mensaje)
}

// Unwrap mapea el status al error de dominio correspondiente, de modo que los
// llamadores comparen con errors.Is sin mirar códigos HTTP.
func (e *ErrorBackend) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAutorizacion
	case http.StatusNotFound:
		return domain.ErrNoEncontrado
	default:
		return domain.ErrRed
	}
}

// Client es el cliente base. Los clientes por recurso (productos, usuarios,
// órdenes, contacto) se construyen sobre él.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    *logger.Logger

	mu    sync.RWMutex
	hooks []HookNoAutorizado
}

// NewClient construye el cliente base a partir de la URL raíz del backend
// (ej. http://localhost:8080/api/v1).
func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, log *logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: URL base inválida %q: %w", baseURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{base: u, http: httpClient, tokens: tokens, log: log}, nil
}

// AlQuedarNoAutorizado registra un hook para respuestas 401/403.
func (c *Client) AlQuedarNoAutorizado(h HookNoAutorizado) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, h)
}

func (c *Client) dispararNoAutorizado(status int) {
	c.mu.RLock()
	hooks := make([]HookNoAutorizado, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()
	for _, h := range hooks {
		h(status)
	}
}

// hacer ejecuta una petición JSON contra el backend y decodifica la respuesta
// en out (si out no es nil). El bearer se adjunta siempre que haya token:
// siempre es seguro enviarlo, el servidor decide si lo exige.
func (c *Client) hacer(ctx context.Context, method, path string, query url.Values, body, out any) error {
	rel := &url.URL{Path: c.base.Path + path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	u := c.base.ResolveReference(rel)

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar petición %s %s: %w", method, path, err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), payload)
	if err != nil {
		return fmt.Errorf("backend: armar petición %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRed, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		berr := &ErrorBackend{Status: resp.StatusCode, Mensaje: leerMensajeError(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			c.log.Warn().Int("status", resp.StatusCode).Str("path", path).
				Msg("respuesta de autorización fallida, disparando hook de sesión")
			c.dispararNoAutorizado(resp.StatusCode)
		}
		return berr
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: leer respuesta %s %s: %v", domain.ErrRed, method, path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("backend: decodificar respuesta %s %s: %w", method, path, err)
	}
	return nil
}

// leerMensajeError extrae el campo message del cuerpo de error; si el cuerpo
// no es JSON (o no trae message) devuelve el texto plano o el genérico.
func leerMensajeError(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 8<<10))
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return MensajeGenerico
	}
	var cuerpo struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &cuerpo); err == nil {
		if cuerpo.Message != "" {
			return cuerpo.Message
		}
		if cuerpo.Error != "" {
			return cuerpo.Error
		}
	}
	return strings.TrimSpace(string(data))
}

// EsAutorizacion indica si el error corresponde a un 401/403 del backend.
func EsAutorizacion(err error) bool {
	return errors.Is(err, domain.ErrAutorizacion)
}
