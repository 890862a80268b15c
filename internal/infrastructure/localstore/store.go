// Package localstore implementa los puertos del almacén local sobre un
// directorio de archivos JSON (un archivo por clave), el equivalente del
// localStorage del navegador. El filesystem se inyecta vía afero para poder
// usar memfs en tests.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// versionEsquema versiona el formato persistido. Un archivo con otra versión
// se descarta como si no existiera (estado vacío), nunca se intenta migrar.
const versionEsquema = 1

// Claves del almacén. Mismos nombres que usaba el storefront en el navegador.
const (
	claveUsuario = "usuario_logueado"
	claveToken   = "token"
	claveCarrito = "carrito"
)

// Store es el acceso de bajo nivel al directorio de datos. Las escrituras son
// atómicas (archivo temporal + rename) y serializadas con un mutex: el almacén
// puede compartirse entre los repositorios de sesión y carrito.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// New prepara el directorio de datos.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

type sobre struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func (s *Store) ruta(clave string) string {
	return filepath.Join(s.dir, clave+".json")
}

// guardar serializa v bajo la clave indicada.
func (s *Store) guardar(clave string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %s: %w", clave, err)
	}
	cuerpo, err := json.Marshal(sobre{Version: versionEsquema, Data: data})
	if err != nil {
		return fmt.Errorf("localstore: envolver %s: %w", clave, err)
	}

	tmp := s.ruta(clave) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, cuerpo, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", clave, err)
	}
	if err := s.fs.Rename(tmp, s.ruta(clave)); err != nil {
		return fmt.Errorf("localstore: publicar %s: %w", clave, err)
	}
	return nil
}

// obtener deserializa la clave en v. Devuelve false si la clave no existe o
// su versión de esquema no coincide.
func (s *Store) obtener(clave string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cuerpo, err := afero.ReadFile(s.fs, s.ruta(clave))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("localstore: leer %s: %w", clave, err)
	}

	var env sobre
	if err := json.Unmarshal(cuerpo, &env); err != nil {
		return false, fmt.Errorf("localstore: decodificar %s: %w", clave, err)
	}
	if env.Version != versionEsquema {
		return false, nil
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return false, fmt.Errorf("localstore: decodificar datos de %s: %w", clave, err)
	}
	return true, nil
}

// eliminar borra la clave; borrar una clave inexistente no es error.
func (s *Store) eliminar(clave string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.ruta(clave))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: eliminar %s: %w", clave, err)
	}
	return nil
}
