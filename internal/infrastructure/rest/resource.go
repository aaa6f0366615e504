package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/supply-manager/supply-admin/internal/application/ports"
)

// Verificar en tiempo de compilación que Resource implementa el puerto CRUD.
var _ ports.Resource[struct{}, struct{}] = (*Resource[struct{}, struct{}])(nil)

// Resource adaptador CRUD genérico sobre /api/{resource}. T es la entidad que
// devuelve el servidor, D el draft que se envía.
type Resource[T any, D any] struct {
	c    *Client
	path string
}

// NewResource construye el recurso para una familia ("categories", "products",
// "suppliers", "users").
func NewResource[T any, D any](c *Client, name string) *Resource[T, D] {
	return &Resource[T, D]{c: c, path: "/api/" + name}
}

// List obtiene la colección completa.
func (r *Resource[T, D]) List(ctx context.Context) ([]T, error) {
	raw, err := r.c.do(ctx, http.MethodGet, r.path, nil)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("api: deserializar lista %s: %w", r.path, err)
	}
	return items, nil
}

// Get obtiene una entidad por id.
func (r *Resource[T, D]) Get(ctx context.Context, id int64) (*T, error) {
	raw, err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

// Create envía el draft y devuelve la entidad creada, ya con id y timestamp
// asignados por el servidor.
func (r *Resource[T, D]) Create(ctx context.Context, draft D) (*T, error) {
	raw, err := r.c.do(ctx, http.MethodPost, r.path, draft)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

// Update reemplaza la entidad completa (no es un patch parcial).
func (r *Resource[T, D]) Update(ctx context.Context, id int64, draft D) (*T, error) {
	raw, err := r.c.do(ctx, http.MethodPut, r.itemPath(id), draft)
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

// Delete elimina por id. El éxito lo señala solo el estado; el cuerpo, si lo
// hay, se descarta.
func (r *Resource[T, D]) Delete(ctx context.Context, id int64) error {
	_, err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil)
	return err
}

func (r *Resource[T, D]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *Resource[T, D]) decode(raw []byte) (*T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("api: deserializar %s: %w", r.path, err)
	}
	return &item, nil
}
