package pages

import (
	"fmt"
	"strconv"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/internal/application/dto"
	"github.com/supply-manager/supply-admin/internal/domain/entity"
	"github.com/supply-manager/supply-admin/internal/infrastructure/rest"
	"github.com/supply-manager/supply-admin/internal/interfaces/console"
)

// NewProductsPage página de productos. Categorías y proveedores se cargan como
// relacionadas solo para el join de nombres en la tabla; los productos no
// tienen guard de eliminación.
func NewProductsPage(api *rest.Client, deps Deps) console.Page {
	resource := rest.NewResource[entity.Product, dto.ProductDraft](api, "products")
	categories := crud.NewCollection[entity.Category](rest.NewResource[entity.Category, dto.CategoryDraft](api, "categories"))
	suppliers := crud.NewCollection[entity.Supplier](rest.NewResource[entity.Supplier, dto.SupplierDraft](api, "suppliers"))

	categoryName := func(id *int64) string {
		if id == nil {
			return "-"
		}
		if c, ok := categories.FindByID(*id); ok {
			return c.Name
		}
		return "-"
	}
	supplierName := func(id *int64) string {
		if id == nil {
			return "-"
		}
		if s, ok := suppliers.FindByID(*id); ok {
			return s.Name
		}
		return "-"
	}

	form := crud.NewForm(
		crud.Field{Key: "name", Label: "Nombre"},
		crud.Field{Key: "description", Label: "Descripción"},
		crud.Field{Key: "price", Label: "Precio", Kind: crud.FieldDecimal, Default: "0"},
		crud.Field{Key: "stock", Label: "Stock", Kind: crud.FieldInt, Default: "0"},
		crud.Field{Key: "categoryId", Label: "Id de categoría (vacío = ninguna)", Kind: crud.FieldInt},
		crud.Field{Key: "supplierId", Label: "Id de proveedor (vacío = ninguno)", Kind: crud.FieldInt},
	)

	ctrl := crud.New(crud.Config[entity.Product, dto.ProductDraft]{
		Singular:   "producto",
		Plural:     "productos",
		CreatedMsg: "Producto creado con éxito",
		UpdatedMsg: "Producto actualizado con éxito",
		DeletedMsg: "Producto eliminado con éxito",
		ConfirmMsg: "¿Seguro que desea eliminar este producto?",
		Resource:   resource,
		Related:    []crud.Reloadable{categories, suppliers},
		Form:       form,
		Rules: []crud.Rule{
			{Field: "name", Label: "El nombre del producto", Required: true},
		},
		Fill: func(f *crud.Form, p entity.Product) {
			f.Set("name", p.Name)
			f.Set("description", p.Description)
			f.Set("price", p.Price.String())
			f.Set("stock", strconv.Itoa(p.Stock))
			f.Set("categoryId", optionalIDValue(p.CategoryID))
			f.Set("supplierId", optionalIDValue(p.SupplierID))
		},
		Draft: func(f *crud.Form, _ bool) dto.ProductDraft {
			// price y stock viajan como números, nunca como strings.
			return dto.ProductDraft{
				Name:        f.Value("name"),
				Description: f.Value("description"),
				Price:       f.Decimal("price"),
				Stock:       f.Int("stock"),
				CategoryID:  f.OptionalID("categoryId"),
				SupplierID:  f.OptionalID("supplierId"),
			}
		},
		SearchText: func(p entity.Product) string {
			return p.Name + " " + p.Description
		},
	}, deps.Notify, deps.Confirm, deps.Log)

	project := func(items []entity.Product, canDelete func(entity.Product) bool) console.Table {
		t := console.Table{
			Header: []string{"ID", "Nombre", "Descripción", "Precio", "Stock", "Categoría", "Proveedor"},
			Empty:  "Ningún producto encontrado",
		}
		for _, p := range items {
			t.Rows = append(t.Rows, console.Row{
				ID: p.ID,
				Cells: []string{
					strconv.FormatInt(p.ID, 10),
					p.Name,
					console.Dash(p.Description),
					console.FormatCurrency(p.Price),
					fmt.Sprintf("%d (%s)", p.Stock, p.Tier().Label()),
					categoryName(p.CategoryID),
					supplierName(p.SupplierID),
				},
				CanDelete: canDelete(p),
			})
		}
		return t
	}

	return newBoundPage("Productos", ctrl, project, nil)
}

func optionalIDValue(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
