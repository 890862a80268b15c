package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huerto-hogar/tienda-web/internal/application/cart"
	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/localstore"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// buildCarrito arma un motor de carrito sobre un almacén en memoria y devuelve
// también el repositorio para inspeccionar lo persistido.
func buildCarrito(t *testing.T) (*cart.UseCase, *localstore.CarritoRepository) {
	t.Helper()
	store, err := localstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	repo := localstore.NewCarritoRepository(store)
	uc, err := cart.New(repo, testLogger())
	require.NoError(t, err)
	return uc, repo
}

func manzana(stock int) *entity.Producto {
	return &entity.Producto{
		ID:    "MAN1",
		Name:  "Manzana Fuji",
		Price: decimal.NewFromInt(1200),
		Stock: stock,
	}
}

func platano(stock int) *entity.Producto {
	return &entity.Producto{
		ID:    "PLA1",
		Name:  "Plátano Cavendish",
		Price: decimal.NewFromInt(800),
		Stock: stock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar
// ──────────────────────────────────────────────────────────────────────────────

func TestAgregar_ProductoNuevoQuedaConCantidadUno(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5)))

	items := uc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "MAN1", items[0].ID)
	assert.Equal(t, 1, items[0].Cantidad)
	assert.Equal(t, 5, items[0].Stock)
	assert.Equal(t, "default.png", items[0].Imagen, "sin imagen debe usar la por defecto")
}

func TestAgregar_ProductoExistenteIncrementaCantidad(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Agregar(manzana(5)))

	items := uc.Items()
	require.Len(t, items, 1, "el mismo producto no debe duplicar líneas")
	assert.Equal(t, 2, items[0].Cantidad)
}

func TestAgregar_SinStockRetornaError(t *testing.T) {
	uc, _ := buildCarrito(t)

	err := uc.Agregar(manzana(0))
	assert.ErrorIs(t, err, domain.ErrSinStock)
	assert.Empty(t, uc.Items(), "un agregado rechazado no debe mutar el carrito")
}

func TestAgregar_TopeDeStockRetornaError(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(2)))
	require.NoError(t, uc.Agregar(manzana(2)))

	err := uc.Agregar(manzana(2))
	assert.ErrorIs(t, err, domain.ErrStockExcedido)
	assert.Equal(t, 2, uc.Items()[0].Cantidad, "la cantidad no debe superar el stock")
}

func TestAgregar_RefrescaElStockDeLaLinea(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(2)))
	// El catálogo ahora reporta más stock para el mismo producto.
	require.NoError(t, uc.Agregar(manzana(10)))

	items := uc.Items()
	assert.Equal(t, 10, items[0].Stock, "el tope debe refrescarse con el stock más reciente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Incrementar / Decrementar
// ──────────────────────────────────────────────────────────────────────────────

func TestIncrementar_RespetaElStockDeLaLinea(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(2)))
	require.NoError(t, uc.Incrementar("MAN1"))

	err := uc.Incrementar("MAN1")
	assert.ErrorIs(t, err, domain.ErrStockExcedido,
		"con cantidad 2 y stock 2 el incremento debe rechazarse")
	assert.Equal(t, 2, uc.Items()[0].Cantidad)
}

func TestIncrementar_LineaInexistenteRetornaNoEncontrado(t *testing.T) {
	uc, _ := buildCarrito(t)

	err := uc.Incrementar("NOEXISTE")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

func TestDecrementar_EnUnoEliminaLaLinea(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Decrementar("MAN1"))

	assert.Empty(t, uc.Items(), "una línea que llega a cantidad 0 debe desaparecer")
}

func TestDecrementar_NuncaDejaCantidadNegativa(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Decrementar("MAN1"))

	// La línea ya no existe; decrementar de nuevo es NoEncontrado, no negativo.
	err := uc.Decrementar("MAN1")
	assert.ErrorIs(t, err, domain.ErrNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Quitar / Vaciar — confirmación obligatoria
// ──────────────────────────────────────────────────────────────────────────────

func TestQuitar_SinConfirmacionRetornaError(t *testing.T) {
	uc, _ := buildCarrito(t)
	require.NoError(t, uc.Agregar(manzana(5)))

	err := uc.Quitar("MAN1", false)
	assert.ErrorIs(t, err, domain.ErrConfirmacionRequerida)
	assert.Len(t, uc.Items(), 1, "sin confirmación no debe eliminarse nada")
}

func TestQuitar_ConConfirmacionEliminaSoloEsaLinea(t *testing.T) {
	uc, _ := buildCarrito(t)
	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Agregar(platano(5)))

	require.NoError(t, uc.Quitar("MAN1", true))

	items := uc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "PLA1", items[0].ID)
}

func TestVaciar_SinConfirmacionRetornaError(t *testing.T) {
	uc, _ := buildCarrito(t)
	require.NoError(t, uc.Agregar(manzana(5)))

	assert.ErrorIs(t, uc.Vaciar(false), domain.ErrConfirmacionRequerida)
	assert.Len(t, uc.Items(), 1)
}

func TestVaciar_ConConfirmacionDejaElCarritoVacio(t *testing.T) {
	uc, repo := buildCarrito(t)
	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Agregar(platano(5)))

	require.NoError(t, uc.Vaciar(true))

	assert.Empty(t, uc.Items())
	persistido, err := repo.Obtener()
	require.NoError(t, err)
	assert.Empty(t, persistido, "el vaciado debe reflejarse en el almacén")
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia y restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistencia_CadaMutacionQuedaEnElAlmacen(t *testing.T) {
	uc, repo := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Incrementar("MAN1"))

	persistido, err := repo.Obtener()
	require.NoError(t, err)
	require.Len(t, persistido, 1)
	assert.Equal(t, 2, persistido[0].Cantidad, "lo persistido debe igualar la memoria")
}

func TestRestauracion_UnNuevoMotorRecuperaElCarrito(t *testing.T) {
	store, err := localstore.New(afero.NewMemMapFs(), "/data")
	require.NoError(t, err)
	repo := localstore.NewCarritoRepository(store)

	uc1, err := cart.New(repo, testLogger())
	require.NoError(t, err)
	require.NoError(t, uc1.Agregar(manzana(5)))
	require.NoError(t, uc1.Agregar(platano(5)))

	// Segundo motor sobre el mismo almacén: simula reiniciar la aplicación.
	uc2, err := cart.New(repo, testLogger())
	require.NoError(t, err)
	assert.Len(t, uc2.Items(), 2)
	assert.True(t, uc2.Total().Equal(decimal.NewFromInt(2000)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Total y suscriptores
// ──────────────────────────────────────────────────────────────────────────────

func TestTotal_SumaPrecioPorCantidad(t *testing.T) {
	uc, _ := buildCarrito(t)

	require.NoError(t, uc.Agregar(manzana(5))) // 1200
	require.NoError(t, uc.Incrementar("MAN1")) // 2400
	require.NoError(t, uc.Agregar(platano(5))) // +800

	assert.True(t, uc.Total().Equal(decimal.NewFromInt(3200)),
		"total esperado 3200, obtenido %s", uc.Total())
}

func TestTotalDe_IgnoraLineasConCantidadCero(t *testing.T) {
	items := []entity.ItemCarrito{
		{ID: "A", Precio: decimal.NewFromInt(100), Cantidad: 2},
		{ID: "B", Precio: decimal.NewFromInt(999), Cantidad: 0},
	}
	assert.True(t, cart.TotalDe(items).Equal(decimal.NewFromInt(200)))
}

func TestSuscriptores_RecibenCadaMutacion(t *testing.T) {
	uc, _ := buildCarrito(t)

	var notificaciones [][]entity.ItemCarrito
	uc.Suscribir(func(items []entity.ItemCarrito) {
		notificaciones = append(notificaciones, items)
	})

	require.NoError(t, uc.Agregar(manzana(5)))
	require.NoError(t, uc.Incrementar("MAN1"))
	require.NoError(t, uc.Vaciar(true))

	require.Len(t, notificaciones, 3)
	assert.Len(t, notificaciones[0], 1)
	assert.Equal(t, 2, notificaciones[1][0].Cantidad)
	assert.Empty(t, notificaciones[2], "la última notificación debe ser el carrito vacío")
}
