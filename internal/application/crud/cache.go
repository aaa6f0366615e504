package crud

import (
	"context"

	"github.com/supply-manager/supply-admin/internal/application/ports"
)

// Record entidad gestionada por la API, con id asignado por el servidor.
type Record interface {
	EntityID() int64
}

// Reloadable colección que puede recargarse por completo desde el servidor.
type Reloadable interface {
	Reload(ctx context.Context) error
}

// Collection cachea la última lista obtenida con éxito para una familia de
// recursos, durante la vida de la sesión de página. Nunca se muta de forma
// optimista: solo se reemplaza entera tras un List remoto exitoso; cada
// create/update/delete confirmado va seguido de un Reload completo.
type Collection[T Record] struct {
	lister ports.Lister[T]
	items  []T
}

// NewCollection construye la caché vacía sobre el puerto de lectura.
func NewCollection[T Record](lister ports.Lister[T]) *Collection[T] {
	return &Collection[T]{lister: lister}
}

// Reload pide la lista completa; si la llamada falla, la caché conserva el
// contenido anterior.
func (c *Collection[T]) Reload(ctx context.Context) error {
	items, err := c.lister.List(ctx)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// Items devuelve la última lista cacheada.
func (c *Collection[T]) Items() []T { return c.items }

// Len cantidad de elementos cacheados.
func (c *Collection[T]) Len() int { return len(c.items) }

// FindByID busca en la caché (no consulta el servidor).
func (c *Collection[T]) FindByID(id int64) (T, bool) {
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// CountWhere cuenta los elementos cacheados que cumplen el predicado.
func (c *Collection[T]) CountWhere(pred func(T) bool) int {
	n := 0
	for _, it := range c.items {
		if pred(it) {
			n++
		}
	}
	return n
}
