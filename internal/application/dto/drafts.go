// Package dto define los drafts: payloads que el cliente construye para
// create/update. Nunca llevan campos asignados por el servidor (id, createdAt).
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/supply-manager/supply-admin/internal/domain/entity"
)

func init() {
	// La API espera price como número JSON (19.9), no como string ("19.9").
	decimal.MarshalJSONWithoutQuotes = true
}

// CategoryDraft payload de categoría.
type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductDraft payload de producto. CategoryID/SupplierID en nil se serializan
// como null (sin asignar).
type ProductDraft struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoryId"`
	SupplierID  *int64          `json:"supplierId"`
}

// SupplierDraft payload de proveedor.
type SupplierDraft struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	ContactPerson string        `json:"contactPerson"`
	CNPJ          string        `json:"cnpj"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
	Status        entity.Status `json:"status"`
}

// UserDraft payload de usuario. Password con omitempty: en una actualización
// sin contraseña nueva el campo no viaja y el servidor conserva la almacenada.
type UserDraft struct {
	Username string        `json:"username"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password,omitempty"`
	Role     entity.Role   `json:"role"`
	Status   entity.Status `json:"status"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
}
