// Package session guarda el token de sesión del operador en disco: el análogo
// del localStorage del navegador. La consola no emite tokens (eso es del
// servidor); solo los almacena y los inyecta como header Bearer.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store almacén de token respaldado por un archivo.
type Store struct {
	path string
}

// NewStore construye el almacén sobre la ruta configurada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Token devuelve el token guardado, o vacío si no hay sesión.
func (s *Store) Token() string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(raw))
}

// Save persiste el token con permisos restringidos al usuario.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: crear directorio: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	return nil
}

// Clear elimina la sesión guardada; no es error que no exista.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: eliminar token: %w", err)
	}
	return nil
}

// AuthorizationValue devuelve el valor del header Authorization
// ("Bearer <token>"), o vacío si no hay sesión.
func (s *Store) AuthorizationValue() string {
	tok := s.Token()
	if tok == "" {
		return ""
	}
	return "Bearer " + tok
}

// ExpiresAt devuelve la expiración declarada en el token. El cliente no conoce
// el secreto del servidor, así que los claims se leen sin verificar la firma;
// sirve solo para avisar al operador, la autorización real la decide la API.
func (s *Store) ExpiresAt() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
