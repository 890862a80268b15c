// Package repository define los puertos del almacén local del cliente.
// El único estado que el storefront posee es la sesión (usuario + token) y el
// carrito; todo lo demás vive en el backend remoto.
package repository

import "github.com/huerto-hogar/tienda-web/internal/domain/entity"

// SesionRepository persiste el usuario logueado y su token bearer.
// Obtener* devuelven valor cero (nil / "") cuando no hay nada guardado.
type SesionRepository interface {
	GuardarUsuario(u *entity.Usuario) error
	ObtenerUsuario() (*entity.Usuario, error)
	GuardarToken(token string) error
	ObtenerToken() (string, error)
	Limpiar() error
}

// CarritoRepository persiste la lista de líneas del carrito.
// Obtener devuelve lista vacía cuando no hay carrito guardado.
type CarritoRepository interface {
	Guardar(items []entity.ItemCarrito) error
	Obtener() ([]entity.ItemCarrito, error)
	Limpiar() error
}
