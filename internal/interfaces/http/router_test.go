package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huerto-hogar/tienda-web/internal/application/admin"
	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/application/checkout"
	"github.com/huerto-hogar/tienda-web/internal/application/report"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/localstore"
	infrapdf "github.com/huerto-hogar/tienda-web/internal/infrastructure/pdf"
	apphttp "github.com/huerto-hogar/tienda-web/internal/interfaces/http"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// backendFalso responde catálogo, login y compra como el backend remoto real.
func backendFalso(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/productos":
			_, _ = w.Write([]byte(`[
				{"id": "MAN1", "name": "Manzana", "price": 1200, "stock": 2, "criticalStock": 1, "category": "Frutas"},
				{"id": "ZAN1", "name": "Zanahoria", "price": 500, "stock": 0, "category": "Verduras"},
				{"id": "PLA1", "name": "Plátano", "price": 800, "stock": 9, "category": "Frutas"}
			]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/usuarios/login":
			_, _ = w.Write([]byte(`{
				"usuario": {"id": 7, "nombre": "Ana", "correo": "ana@gmail.com", "rol": {"nombre": "VENDEDOR"}},
				"token": "jwt-de-prueba"
			}`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/ordenes/comprar":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message": "Stock insuficiente"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/ordenes":
			_, _ = w.Write([]byte(`[{"id": 1, "estado": "Pendiente", "total": 1000, "fecha": "2025-03-01T10:00:00"}]`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/usuarios":
			_, _ = w.Write([]byte(`[{"id": 7, "correo": "ana@gmail.com", "rol": {"nombre": "ADMIN"}}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "no encontrado"}`))
		}
	}))
}

// aplicacion agrupa la app Fiber armada y sus piezas internas.
type aplicacion struct {
	app        *fiber.App
	sesionRepo *localstore.SesionRepository
	sesion     *session.UseCase
}

// buildApp arma la aplicación completa contra el backend falso. rol "" deja la
// app sin sesión.
func buildApp(t *testing.T, backendURL string, rol entity.Rol) *aplicacion {
	t.Helper()

	store, err := localstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	sesionRepo := localstore.NewSesionRepository(store)
	carritoRepo := localstore.NewCarritoRepository(store)

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	tokens := backend.TokenSourceFunc(func() string {
		tok, _ := sesionRepo.ObtenerToken()
		return tok
	})
	client, err := backend.NewClient(backendURL+"/api/v1", http.DefaultClient, tokens, log)
	require.NoError(t, err)

	productosCli := backend.NewProductosClient(client)
	usuariosCli := backend.NewUsuariosClient(client)
	ordenesCli := backend.NewOrdenesClient(client)
	contactoCli := backend.NewContactoClient(client)

	sesionUC := session.New(sesionRepo, usuariosCli, client, log)
	if rol != "" {
		require.NoError(t, sesionRepo.GuardarUsuario(&entity.Usuario{
			ID: 7, Nombre: "Ana", Correo: "ana@gmail.com", Rol: entity.RolCrudo{Nombre: string(rol)},
		}))
		require.NoError(t, sesionUC.Restore())
	}

	carritoUC, err := cart.New(carritoRepo, log)
	require.NoError(t, err)
	checkoutUC := checkout.New(sesionUC, carritoUC, carritoRepo, ordenesCli, log)
	adminUC := admin.New(productosCli, usuariosCli, ordenesCli, sesionUC, log)
	reportUC := report.New(infrapdf.NewMarotoReportGenerator())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SesionUC:   sesionUC,
		CarritoUC:  carritoUC,
		CheckoutUC: checkoutUC,
		AdminUC:    adminUC,
		ReportUC:   reportUC,
		Productos:  productosCli,
		Contacto:   contactoCli,
	})
	return &aplicacion{app: app, sesionRepo: sesionRepo, sesion: sesionUC}
}

func hacerJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		payload = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, payload)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificar(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tienda pública
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_FiltraPorCategoriaYEntregaFacetas(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/productos?categoria=Frutas", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)

	assert.Len(t, body["productos"], 2)
	assert.Equal(t, "Frutas", body["categoria"])
	assert.Equal(t, []any{"Todas", "Frutas", "Verduras"}, body["categorias"])
}

func TestContacto_CamposObligatorios(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/contacto",
		map[string]string{"nombre": "Ana", "email": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_VendedorRecibeDestinoAdministrador(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/auth/login",
		map[string]string{"correo": "ana@gmail.com", "password": "1234"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)

	assert.Equal(t, "/administrador", body["destino"])
	assert.Equal(t, true, body["permisoAdmin"])
	assert.Equal(t, "VENDEDOR", body["rol"])

	tok, err := a.sesionRepo.ObtenerToken()
	require.NoError(t, err)
	assert.Equal(t, "jwt-de-prueba", tok)
}

func TestSesion_SinSesionActiva(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/sesion", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)

	sesion, ok := body["sesion"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, sesion["autenticado"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito y checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestCarrito_FlujoAgregarIncrementarYTope(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	// Agregar MAN1 (stock 2).
	resp := hacerJSON(t, a.app, http.MethodPost, "/api/carrito", map[string]string{"idProducto": "MAN1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Incrementar hasta el stock.
	resp = hacerJSON(t, a.app, http.MethodPost, "/api/carrito/MAN1/incrementar", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Superar el stock es 409.
	resp = hacerJSON(t, a.app, http.MethodPost, "/api/carrito/MAN1/incrementar", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	cuerpo := decodificar(t, resp)
	assert.Equal(t, "STOCK_EXCEDIDO", cuerpo["code"])

	resp = hacerJSON(t, a.app, http.MethodGet, "/api/carrito", nil)
	body := decodificar(t, resp)
	assert.Equal(t, "2400", body["total"], "decimal serializa como string")
}

func TestCarrito_AgregarSinStockRetorna409(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/carrito", map[string]string{"idProducto": "ZAN1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestCarrito_ProductoInexistenteRetorna404(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/carrito", map[string]string{"idProducto": "NOEXISTE"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCarrito_VaciarExigeConfirmacion(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/carrito", map[string]string{"idProducto": "PLA1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = hacerJSON(t, a.app, http.MethodDelete, "/api/carrito", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = hacerJSON(t, a.app, http.MethodDelete, "/api/carrito?confirmar=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)
	assert.Empty(t, body["items"])
}

func TestCheckout_SinSesionRetorna401(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/checkout", map[string]string{
		"calle": "Calle 1", "region": "Metropolitana de Santiago", "comuna": "Maipú",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestCheckout_FalloDelBackendRetorna502ConSnapshot(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, entity.RolCliente)

	resp := hacerJSON(t, a.app, http.MethodPost, "/api/carrito", map[string]string{"idProducto": "PLA1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = hacerJSON(t, a.app, http.MethodPost, "/api/checkout", map[string]string{
		"calle": "Calle 1", "region": "Metropolitana de Santiago", "comuna": "Maipú",
	})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := decodificar(t, resp)

	assert.Equal(t, checkout.EstadoFallido, body["estado"])
	assert.Equal(t, "Stock insuficiente", body["mensaje"])

	// El carrito sigue intacto para reintentar.
	resp = hacerJSON(t, a.app, http.MethodGet, "/api/carrito", nil)
	carrito := decodificar(t, resp)
	assert.Len(t, carrito["items"], 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Protección del panel
// ──────────────────────────────────────────────────────────────────────────────

func TestPanel_SinSesionRetorna401(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, "")

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/admin/menu", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPanel_ClienteRetorna403(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, entity.RolCliente)

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/admin/menu", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestPanel_VendedorVeSuMenuPeroNoUsuarios(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, entity.RolVendedor)

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/admin/menu", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)
	assert.Equal(t, []any{admin.TabOrdenes, admin.TabProductos, admin.TabPerfil}, body["menu"])
	assert.Equal(t, admin.TabOrdenes, body["tabPorDefecto"])

	// La gestión de usuarios es solo ADMIN.
	resp = hacerJSON(t, a.app, http.MethodGet, "/api/admin/usuarios", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = hacerJSON(t, a.app, http.MethodGet, "/api/admin/reportes", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestPanel_AdminDescargaElReportePDF(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, entity.RolAdmin)

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/admin/reportes/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPanel_OrdenesConConteos(t *testing.T) {
	srv := backendFalso(t)
	defer srv.Close()
	a := buildApp(t, srv.URL, entity.RolAdmin)

	resp := hacerJSON(t, a.app, http.MethodGet, "/api/admin/ordenes?recargar=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodificar(t, resp)

	assert.Len(t, body["ordenes"], 1)
	conteos, ok := body["conteos"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), conteos["Pendiente"])
	assert.Equal(t, float64(1), conteos["Todos"])
}
