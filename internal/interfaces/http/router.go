package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/huerto-hogar/tienda-web/internal/application/admin"
	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/application/checkout"
	"github.com/huerto-hogar/tienda-web/internal/application/report"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SesionUC   *session.UseCase
	CarritoUC  *cart.UseCase
	CheckoutUC *checkout.UseCase
	AdminUC    *admin.UseCase
	ReportUC   *report.UseCase
	Productos  *backend.ProductosClient
	Contacto   *backend.ContactoClient
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y sesión (público)
	authHandler := NewAuthHandler(deps.SesionUC)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/registro", authHandler.Registro)
	auth.Post("/logout", authHandler.Logout)
	api.Get("/sesion", authHandler.Sesion)

	// Tienda (público)
	tiendaHandler := NewTiendaHandler(deps.Productos, deps.Contacto)
	api.Get("/productos", tiendaHandler.Productos)
	api.Get("/categorias", tiendaHandler.Categorias)
	api.Post("/contacto", tiendaHandler.Contacto)

	// Carrito y checkout (público; el checkout exige sesión a nivel de caso de uso)
	carritoHandler := NewCarritoHandler(deps.CarritoUC, deps.CheckoutUC, deps.Productos)
	carrito := api.Group("/carrito")
	carrito.Get("/", carritoHandler.Ver)
	carrito.Post("/", carritoHandler.Agregar)
	carrito.Post("/:id/incrementar", carritoHandler.Incrementar)
	carrito.Post("/:id/decrementar", carritoHandler.Decrementar)
	carrito.Delete("/:id", carritoHandler.Quitar)
	carrito.Delete("/", carritoHandler.Vaciar)
	api.Post("/checkout", carritoHandler.Comprar)

	// Panel de administración (requiere rol ADMIN o VENDEDOR)
	adminHandler := NewAdminHandler(deps.AdminUC, deps.ReportUC, deps.SesionUC)
	panel := api.Group("/admin", RequireAdminAccess(deps.SesionUC))
	panel.Get("/menu", adminHandler.Menu)
	panel.Get("/dashboard", adminHandler.Dashboard)
	panel.Get("/ordenes", adminHandler.Ordenes)
	panel.Patch("/ordenes/:id/estado", adminHandler.CambiarEstadoOrden)
	panel.Get("/productos", adminHandler.Productos)
	panel.Post("/productos", adminHandler.CrearProducto)
	panel.Put("/productos/:id", adminHandler.ActualizarProducto)
	panel.Delete("/productos/:id", adminHandler.EliminarProducto)
	panel.Put("/perfil", adminHandler.ActualizarPerfil)

	// Gestión de usuarios y reportes: solo ADMIN
	soloAdmin := panel.Group("/", RequireAdmin(deps.SesionUC))
	soloAdmin.Get("/usuarios", adminHandler.Usuarios)
	soloAdmin.Put("/usuarios/:id", adminHandler.ActualizarUsuario)
	soloAdmin.Delete("/usuarios/:id", adminHandler.EliminarUsuario)
	soloAdmin.Get("/reportes", adminHandler.Reportes)
	soloAdmin.Get("/reportes/pdf", adminHandler.ReportesPDF)
}
