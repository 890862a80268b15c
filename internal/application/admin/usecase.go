// Package admin implementa el shell de administración: menú por rol, carga
// del panel, estadísticas derivadas, gestión de órdenes/productos/usuarios y
// perfil. Las listas del panel son copias locales refrescadas desde el
// backend; las mutaciones exitosas se integran con merge-by-id en vez de
// re-consultar.
package admin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/huerto-hogar/tienda-web/internal/application/session"
	"github.com/huerto-hogar/tienda-web/internal/domain"
	"github.com/huerto-hogar/tienda-web/internal/domain/entity"
	"github.com/huerto-hogar/tienda-web/internal/infrastructure/backend"
	"github.com/huerto-hogar/tienda-web/pkg/logger"
)

// Tabs del panel.
const (
	TabDashboard = "dashboard"
	TabOrdenes   = "ordenes"
	TabProductos = "productos"
	TabUsuarios  = "usuarios"
	TabReportes  = "reportes"
	TabPerfil    = "perfil"
)

// FiltroTodos es el valor de filtro de órdenes que no descarta nada.
const FiltroTodos = "Todos"

// MenuTabs devuelve el conjunto de pestañas permitido para el rol.
// Un rol sin permisos de administración no ve ninguna.
func MenuTabs(rol entity.Rol) []string {
	switch rol {
	case entity.RolAdmin:
		return []string{TabDashboard, TabOrdenes, TabProductos, TabUsuarios, TabReportes, TabPerfil}
	case entity.RolVendedor:
		return []string{TabOrdenes, TabProductos, TabPerfil}
	default:
		return nil
	}
}

// TabPorDefecto: el ADMIN entra al dashboard, el VENDEDOR a órdenes.
func TabPorDefecto(rol entity.Rol) string {
	switch rol {
	case entity.RolAdmin:
		return TabDashboard
	case entity.RolVendedor:
		return TabOrdenes
	default:
		return ""
	}
}

// Stats son los contadores del dashboard; valores derivados puros que se
// recalculan cada vez que cambian las listas, nunca se persisten.
type Stats struct {
	Compras         int `json:"compras"`
	TotalProductos  int `json:"totalProductos"`
	InventarioTotal int `json:"inventarioTotal"`
	TotalUsuarios   int `json:"totalUsuarios"`
}

// CalcularStats deriva los contadores de las listas del panel.
func CalcularStats(productos []entity.Producto, usuarios []entity.Usuario, ordenes []entity.Orden) Stats {
	inventario := 0
	for i := range productos {
		inventario += productos[i].Stock
	}
	return Stats{
		Compras:         len(ordenes),
		TotalProductos:  len(productos),
		InventarioTotal: inventario,
		TotalUsuarios:   len(usuarios),
	}
}

// UseCase estado y operaciones del panel.
type UseCase struct {
	productosCli *backend.ProductosClient
	usuariosCli  *backend.UsuariosClient
	ordenesCli   *backend.OrdenesClient
	sesion       *session.UseCase
	log          *logger.Logger

	mu        sync.RWMutex
	productos []entity.Producto
	usuarios  []entity.Usuario
	ordenes   []entity.Orden
}

// New construye el shell.
func New(productos *backend.ProductosClient, usuarios *backend.UsuariosClient, ordenes *backend.OrdenesClient, sesion *session.UseCase, log *logger.Logger) *UseCase {
	return &UseCase{
		productosCli: productos,
		usuariosCli:  usuarios,
		ordenesCli:   ordenes,
		sesion:       sesion,
		log:          log,
	}
}

// CargarPanel refresca las copias locales: productos y órdenes siempre;
// usuarios solo si la sesión es ADMIN, para no provocar un 403 al VENDEDOR.
func (uc *UseCase) CargarPanel(ctx context.Context) error {
	productos, err := uc.productosCli.Listar(ctx)
	if err != nil {
		return fmt.Errorf("admin: cargar productos: %w", err)
	}
	ordenes, err := uc.ordenesCli.Listar(ctx)
	if err != nil {
		return fmt.Errorf("admin: cargar órdenes: %w", err)
	}

	var usuarios []entity.Usuario
	if uc.sesion.EsAdmin() {
		usuarios, err = uc.usuariosCli.Listar(ctx)
		if err != nil {
			return fmt.Errorf("admin: cargar usuarios: %w", err)
		}
	}

	uc.mu.Lock()
	uc.productos = productos
	uc.ordenes = ordenes
	uc.usuarios = usuarios
	uc.mu.Unlock()

	uc.log.Info().Int("productos", len(productos)).Int("ordenes", len(ordenes)).
		Int("usuarios", len(usuarios)).Msg("panel de administración cargado")
	return nil
}

// Productos devuelve una copia de la lista local.
func (uc *UseCase) Productos() []entity.Producto {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.Producto, len(uc.productos))
	copy(out, uc.productos)
	return out
}

// Usuarios devuelve una copia de la lista local (vacía para VENDEDOR).
func (uc *UseCase) Usuarios() []entity.Usuario {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.Usuario, len(uc.usuarios))
	copy(out, uc.usuarios)
	return out
}

// Ordenes devuelve una copia de la lista local.
func (uc *UseCase) Ordenes() []entity.Orden {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]entity.Orden, len(uc.ordenes))
	copy(out, uc.ordenes)
	return out
}

// Dashboard deriva los contadores de las listas actuales.
func (uc *UseCase) Dashboard() Stats {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return CalcularStats(uc.productos, uc.usuarios, uc.ordenes)
}

// FiltrarOrdenes filtra por estado ("Todos" no descarta) y ordena por fecha
// descendente. Función pura.
func FiltrarOrdenes(ordenes []entity.Orden, estado string) []entity.Orden {
	out := make([]entity.Orden, 0, len(ordenes))
	for _, o := range ordenes {
		if estado == FiltroTodos || estado == "" || o.Estado == estado {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fecha.Time().After(out[j].Fecha.Time())
	})
	return out
}

// ContarPorEstado cuenta las órdenes con el estado exacto.
func ContarPorEstado(ordenes []entity.Orden, estado string) int {
	n := 0
	for _, o := range ordenes {
		if o.Estado == estado {
			n++
		}
	}
	return n
}

// OrdenesFiltradas aplica el filtro sobre la copia local y acompaña los
// conteos por estado para los botones del panel.
func (uc *UseCase) OrdenesFiltradas(estado string) ([]entity.Orden, map[string]int) {
	ordenes := uc.Ordenes()
	conteos := map[string]int{
		FiltroTodos:             len(ordenes),
		entity.EstadoPendiente:  ContarPorEstado(ordenes, entity.EstadoPendiente),
		entity.EstadoEnviado:    ContarPorEstado(ordenes, entity.EstadoEnviado),
		entity.EstadoCompletado: ContarPorEstado(ordenes, entity.EstadoCompletado),
		entity.EstadoCancelado:  ContarPorEstado(ordenes, entity.EstadoCancelado),
	}
	return FiltrarOrdenes(ordenes, estado), conteos
}

// CambiarEstadoOrden confirma, llama al PATCH del backend y actualiza solo el
// estado de la orden afectada en la lista local (actualización optimista, sin
// re-consulta). Una orden Cancelada no admite transiciones.
func (uc *UseCase) CambiarEstadoOrden(ctx context.Context, id int64, nuevoEstado string, confirmado bool) (*entity.Orden, error) {
	if !confirmado {
		return nil, domain.ErrConfirmacionRequerida
	}
	if !entity.EstadoValido(nuevoEstado) {
		return nil, fmt.Errorf("%w: estado %q desconocido", domain.ErrValidacion, nuevoEstado)
	}

	uc.mu.RLock()
	idx := indiceOrden(uc.ordenes, id)
	var actual string
	if idx >= 0 {
		actual = uc.ordenes[idx].Estado
	}
	uc.mu.RUnlock()
	if idx < 0 {
		return nil, fmt.Errorf("%w: orden %d no está en el panel", domain.ErrNoEncontrado, id)
	}
	if actual == entity.EstadoCancelado {
		return nil, domain.ErrOrdenCancelada
	}

	if _, err := uc.ordenesCli.ActualizarEstado(ctx, id, nuevoEstado); err != nil {
		return nil, fmt.Errorf("admin: actualizar estado de orden %d: %w", id, err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx = indiceOrden(uc.ordenes, id)
	if idx < 0 {
		// La lista cambió entre la consulta y el merge; fallar fuerte en vez de
		// reconstruir ad hoc.
		return nil, fmt.Errorf("%w: orden %d desapareció de la lista local", domain.ErrNoEncontrado, id)
	}
	uc.ordenes[idx].Estado = nuevoEstado
	copia := uc.ordenes[idx]
	uc.log.Info().Int64("orden", id).Str("estado", nuevoEstado).Msg("estado de orden actualizado")
	return &copia, nil
}

func indiceOrden(ordenes []entity.Orden, id int64) int {
	for i := range ordenes {
		if ordenes[i].ID == id {
			return i
		}
	}
	return -1
}
