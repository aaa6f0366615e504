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

// NewUsersPage página de usuarios. Sin colecciones relacionadas; el guard
// protege la cuenta admin reservada. La contraseña es de solo escritura:
// obligatoria al crear, opcional al editar (en blanco = conservar la actual).
func NewUsersPage(api *rest.Client, deps Deps) console.Page {
	resource := rest.NewResource[entity.User, dto.UserDraft](api, "users")

	form := crud.NewForm(
		crud.Field{Key: "username", Label: "Nombre de usuario"},
		crud.Field{Key: "name", Label: "Nombre completo"},
		crud.Field{Key: "email", Label: "Email", Kind: crud.FieldEmail},
		crud.Field{Key: "password", Label: "Contraseña (en blanco al editar = conservar)"},
		crud.Field{
			Key: "role", Label: "Rol", Kind: crud.FieldSelect,
			Options: []string{string(entity.RoleAdmin), string(entity.RoleManager), string(entity.RoleUser)},
			Default: string(entity.RoleUser),
		},
		crud.Field{
			Key: "status", Label: "Estado", Kind: crud.FieldSelect,
			Options: []string{string(entity.StatusActive), string(entity.StatusInactive)},
			Default: string(entity.StatusActive),
		},
		crud.Field{Key: "phone", Label: "Teléfono"},
		crud.Field{Key: "address", Label: "Dirección"},
	)

	ctrl := crud.New(crud.Config[entity.User, dto.UserDraft]{
		Singular:   "usuario",
		Plural:     "usuarios",
		CreatedMsg: "Usuario creado con éxito",
		UpdatedMsg: "Usuario actualizado con éxito",
		DeletedMsg: "Usuario eliminado con éxito",
		ConfirmMsg: "¿Seguro que desea eliminar este usuario?",
		Resource:   resource,
		Form:       form,
		Rules: []crud.Rule{
			{Field: "username", Label: "El nombre de usuario", Required: true},
			{Field: "name", Label: "El nombre completo", Required: true},
			{Field: "email", Label: "El email", Required: true},
			{Field: "role", Label: "El rol", Required: true},
			// La contraseña solo es obligatoria para usuarios nuevos.
			{Field: "password", Label: "La contraseña", Required: true, CreateOnly: true},
		},
		Fill: func(f *crud.Form, u entity.User) {
			f.Set("username", u.Username)
			f.Set("name", u.Name)
			f.Set("email", u.Email)
			f.Set("password", "") // el servidor nunca devuelve la contraseña
			f.Set("role", string(u.Role))
			f.Set("status", string(u.Status))
			f.Set("phone", u.Phone)
			f.Set("address", u.Address)
		},
		Draft: func(f *crud.Form, _ bool) dto.UserDraft {
			// Password con omitempty: en blanco no viaja y el servidor
			// conserva la contraseña almacenada.
			return dto.UserDraft{
				Username: f.Value("username"),
				Name:     f.Value("name"),
				Email:    f.Value("email"),
				Password: f.Value("password"),
				Role:     entity.Role(f.Value("role")),
				Status:   entity.Status(f.Value("status")),
				Phone:    f.Value("phone"),
				Address:  f.Value("address"),
			}
		},
		Guard: func(u entity.User) error {
			if u.Protected() {
				return domain.NewGuardError("No se puede eliminar el usuario admin")
			}
			return nil
		},
		SearchText: func(u entity.User) string {
			return u.Username + " " + u.Name + " " + u.Email + " " + string(u.Role) + " " + u.Phone
		},
	}, deps.Notify, deps.Confirm, deps.Log)

	project := func(items []entity.User, canDelete func(entity.User) bool) console.Table {
		t := console.Table{
			Header: []string{"ID", "Usuario", "Nombre", "Email", "Rol", "Estado", "Creado"},
			Empty:  "Ningún usuario encontrado",
		}
		for _, u := range items {
			t.Rows = append(t.Rows, console.Row{
				ID: u.ID,
				Cells: []string{
					strconv.FormatInt(u.ID, 10),
					u.Username,
					u.Name,
					u.Email,
					u.Role.Label(),
					u.Status.Label(),
					console.FormatDate(u.CreatedAt),
				},
				CanDelete: canDelete(u),
			})
		}
		return t
	}

	stats := func() []string {
		admins := ctrl.Primary().CountWhere(func(u entity.User) bool { return u.Role == entity.RoleAdmin })
		active := ctrl.Primary().CountWhere(func(u entity.User) bool { return u.Status == entity.StatusActive })
		return []string{
			fmt.Sprintf("Usuarios: %d", ctrl.Primary().Len()),
			fmt.Sprintf("Administradores: %d", admins),
			fmt.Sprintf("Activos: %d", active),
		}
	}

	return newBoundPage("Usuarios", ctrl, project, stats)
}
