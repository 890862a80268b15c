package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/huerto-hogar/tienda-web/internal/application/admin"
	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/application/checkout"
	"github.com/huerto-hogar/tienda-web/internal/application/report"
	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/localstore"
	infrapdf "github.com/huerto-hogar/tienda-web/internal/infrastructure/pdf"
	httpRouter "github.com/huerto-hogar/tienda-web/internal/interfaces/http"
	"github.com/huerto-hogar/tienda-web/pkg/config"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Almacén local: sesión, token y carrito persisten entre ejecuciones.
	store, err := localstore.New(afero.NewOsFs(), cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	sesionRepo := localstore.NewSesionRepository(store)
	carritoRepo := localstore.NewCarritoRepository(store)

	// Cliente del backend remoto. El token se relee del almacén en cada
	// petición: el almacén es la fuente de verdad de la sesión.
	httpClient := &http.Client{Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second}
	tokens := backend.TokenSourceFunc(func() string {
		tok, err := sesionRepo.ObtenerToken()
		if err != nil {
			log.Error().Err(err).Msg("leer token del almacén")
			return ""
		}
		return tok
	})
	client, err := backend.NewClient(cfg.Backend.BaseURL, httpClient, tokens, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}

	productosCli := backend.NewProductosClient(client)
	usuariosCli := backend.NewUsuariosClient(client)
	ordenesCli := backend.NewOrdenesClient(client)
	contactoCli := backend.NewContactoClient(client)

	sesionUC := session.New(sesionRepo, usuariosCli, client, log)
	if err := sesionUC.Restore(); err != nil {
		log.Error().Err(err).Msg("restaurar sesión persistida")
	}

	carritoUC, err := cart.New(carritoRepo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("restaurar carrito persistido")
	}

	checkoutUC := checkout.New(sesionUC, carritoUC, carritoRepo, ordenesCli, log)
	adminUC := admin.New(productosCli, usuariosCli, ordenesCli, sesionUC, log)
	reportUC := report.New(infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SesionUC:   sesionUC,
		CarritoUC:  carritoUC,
		CheckoutUC: checkoutUC,
		AdminUC:    adminUC,
		ReportUC:   reportUC,
		Productos:  productosCli,
		Contacto:   contactoCli,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
