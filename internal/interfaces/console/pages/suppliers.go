package pages

import (
	"fmt"
	"strconv"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/internal/application/dto"
	"github.com/supply-manager/supply-admin/internal/domain"
	"github.com/supply-manager/supply-admin/internal/domain/entity"
	"github.com/supply-manager/supply-admin/internal/infrastructure/rest"
	"github.com/supply-manager/supply-admin/internal/interfaces/console"
)

// NewSuppliersPage página de proveedores. Igual que las categorías, los
// productos se cargan como relacionada para el contador y el guard.
func NewSuppliersPage(api *rest.Client, deps Deps) console.Page {
	resource := rest.NewResource[entity.Supplier, dto.SupplierDraft](api, "suppliers")
	products := crud.NewCollection[entity.Product](rest.NewResource[entity.Product, dto.ProductDraft](api, "products"))

	countFor := func(id int64) int {
		return products.CountWhere(func(p entity.Product) bool {
			return p.SupplierID != nil && *p.SupplierID == id
		})
	}

	form := crud.NewForm(
		crud.Field{Key: "name", Label: "Nombre"},
		crud.Field{Key: "email", Label: "Email", Kind: crud.FieldEmail},
		crud.Field{Key: "phone", Label: "Teléfono"},
		crud.Field{Key: "contactPerson", Label: "Persona de contacto"},
		crud.Field{Key: "cnpj", Label: "Identificación tributaria"},
		crud.Field{Key: "address", Label: "Dirección"},
		crud.Field{Key: "notes", Label: "Notas"},
		crud.Field{
			Key: "status", Label: "Estado", Kind: crud.FieldSelect,
			Options: []string{string(entity.StatusActive), string(entity.StatusInactive)},
			Default: string(entity.StatusActive),
		},
	)

	ctrl := crud.New(crud.Config[entity.Supplier, dto.SupplierDraft]{
		Singular:   "proveedor",
		Plural:     "proveedores",
		CreatedMsg: "Proveedor creado con éxito",
		UpdatedMsg: "Proveedor actualizado con éxito",
		DeletedMsg: "Proveedor eliminado con éxito",
		ConfirmMsg: "¿Seguro que desea eliminar este proveedor?",
		Resource:   resource,
		Related:    []crud.Reloadable{products},
		Form:       form,
		Rules: []crud.Rule{
			{Field: "name", Label: "El nombre del proveedor", Required: true},
			{Field: "email", Label: "El email del proveedor", Required: true},
			{Field: "phone", Label: "El teléfono del proveedor", Required: true},
		},
		Fill: func(f *crud.Form, s entity.Supplier) {
			f.Set("name", s.Name)
			f.Set("email", s.Email)
			f.Set("phone", s.Phone)
			f.Set("contactPerson", s.ContactPerson)
			f.Set("cnpj", s.CNPJ)
			f.Set("address", s.Address)
			f.Set("notes", s.Notes)
			f.Set("status", string(s.Status))
		},
		Draft: func(f *crud.Form, _ bool) dto.SupplierDraft {
			return dto.SupplierDraft{
				Name:          f.Value("name"),
				Email:         f.Value("email"),
				Phone:         f.Value("phone"),
				ContactPerson: f.Value("contactPerson"),
				CNPJ:          f.Value("cnpj"),
				Address:       f.Value("address"),
				Notes:         f.Value("notes"),
				Status:        entity.Status(f.Value("status")),
			}
		},
		Guard: func(s entity.Supplier) error {
			if countFor(s.ID) > 0 {
				return domain.NewGuardError("No se puede eliminar el proveedor: tiene productos asociados")
			}
			return nil
		},
		SearchText: func(s entity.Supplier) string {
			return s.Name + " " + s.ContactPerson + " " + s.Email + " " + s.Phone
		},
	}, deps.Notify, deps.Confirm, deps.Log)

	project := func(items []entity.Supplier, canDelete func(entity.Supplier) bool) console.Table {
		t := console.Table{
			Header: []string{"ID", "Nombre", "Contacto", "Email", "Teléfono", "Estado", "Productos"},
			Empty:  "Ningún proveedor encontrado",
		}
		for _, s := range items {
			t.Rows = append(t.Rows, console.Row{
				ID: s.ID,
				Cells: []string{
					strconv.FormatInt(s.ID, 10),
					s.Name,
					console.Dash(s.ContactPerson),
					s.Email,
					s.Phone,
					s.Status.Label(),
					strconv.Itoa(countFor(s.ID)),
				},
				CanDelete: canDelete(s),
			})
		}
		return t
	}

	stats := func() []string {
		active := ctrl.Primary().CountWhere(func(s entity.Supplier) bool {
			return s.Status == entity.StatusActive
		})
		return []string{
			fmt.Sprintf("Proveedores: %d", ctrl.Primary().Len()),
			fmt.Sprintf("Activos: %d", active),
			fmt.Sprintf("Productos: %d", products.Len()),
		}
	}

	return newBoundPage("Proveedores", ctrl, project, stats)
}
