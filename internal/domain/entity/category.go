package entity

import "time"

// Category agrupa productos del catálogo.
// Invariante: no puede eliminarse mientras exista al menos un producto asociado;
// el guard se evalúa en el cliente antes de intentar la llamada remota.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EntityID devuelve el id asignado por el servidor.
func (c Category) EntityID() int64 { return c.ID }
