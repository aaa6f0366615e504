package entity

import "time"

// Supplier proveedor de productos.
// Invariante: no puede eliminarse mientras exista al menos un producto asociado.
type Supplier struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	CNPJ          string    `json:"cnpj,omitempty"` // identificación tributaria
	Address       string    `json:"address,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EntityID devuelve el id asignado por el servidor.
func (s Supplier) EntityID() int64 { return s.ID }
