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

// NewCategoriesPage página de categorías. La colección de productos se carga
// solo como relacionada: alimenta el contador por categoría y el guard de
// eliminación (una categoría con productos asociados no puede eliminarse).
func NewCategoriesPage(api *rest.Client, deps Deps) console.Page {
	resource := rest.NewResource[entity.Category, dto.CategoryDraft](api, "categories")
	products := crud.NewCollection[entity.Product](rest.NewResource[entity.Product, dto.ProductDraft](api, "products"))

	countFor := func(id int64) int {
		return products.CountWhere(func(p entity.Product) bool {
			return p.CategoryID != nil && *p.CategoryID == id
		})
	}

	form := crud.NewForm(
		crud.Field{Key: "name", Label: "Nombre"},
		crud.Field{Key: "description", Label: "Descripción"},
	)

	ctrl := crud.New(crud.Config[entity.Category, dto.CategoryDraft]{
		Singular:   "categoría",
		Plural:     "categorías",
		CreatedMsg: "Categoría creada con éxito",
		UpdatedMsg: "Categoría actualizada con éxito",
		DeletedMsg: "Categoría eliminada con éxito",
		ConfirmMsg: "¿Seguro que desea eliminar esta categoría?",
		Resource:   resource,
		Related:    []crud.Reloadable{products},
		Form:       form,
		Rules: []crud.Rule{
			{Field: "name", Label: "El nombre de la categoría", Required: true},
		},
		Fill: func(f *crud.Form, c entity.Category) {
			f.Set("name", c.Name)
			f.Set("description", c.Description)
		},
		Draft: func(f *crud.Form, _ bool) dto.CategoryDraft {
			return dto.CategoryDraft{
				Name:        f.Value("name"),
				Description: f.Value("description"),
			}
		},
		Guard: func(c entity.Category) error {
			if countFor(c.ID) > 0 {
				return domain.NewGuardError("No se puede eliminar la categoría: tiene productos asociados")
			}
			return nil
		},
		SearchText: func(c entity.Category) string {
			return c.Name + " " + c.Description
		},
	}, deps.Notify, deps.Confirm, deps.Log)

	project := func(items []entity.Category, canDelete func(entity.Category) bool) console.Table {
		t := console.Table{
			Header: []string{"ID", "Nombre", "Descripción", "Productos", "Creada"},
			Empty:  "Ninguna categoría encontrada",
		}
		for _, c := range items {
			t.Rows = append(t.Rows, console.Row{
				ID: c.ID,
				Cells: []string{
					strconv.FormatInt(c.ID, 10),
					c.Name,
					console.Dash(c.Description),
					strconv.Itoa(countFor(c.ID)),
					console.FormatDate(c.CreatedAt),
				},
				CanDelete: canDelete(c),
			})
		}
		return t
	}

	stats := func() []string {
		return []string{
			fmt.Sprintf("Categorías: %d", ctrl.Primary().Len()),
			fmt.Sprintf("Productos: %d", products.Len()),
		}
	}

	return newBoundPage("Categorías", ctrl, project, stats)
}
