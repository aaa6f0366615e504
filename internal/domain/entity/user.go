package entity

import "time"

// ReservedAdminUsername usuario protegido: esta consola nunca lo elimina.
const ReservedAdminUsername = "admin"

// Role rol de un usuario del back-office. Enumeración cerrada.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// roleLabels mapeo exhaustivo código → etiqueta visible.
var roleLabels = map[Role]string{
	RoleAdmin:   "Administrador",
	RoleManager: "Gerente",
	RoleUser:    "Usuario",
}

// Label devuelve la etiqueta legible del rol; valores desconocidos se muestran crudos.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return string(r)
}

// Valid indica si el valor pertenece a la enumeración.
func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// User cuenta del back-office. El username es la identidad inmutable.
// La contraseña es de solo escritura: el servidor nunca la devuelve, por eso
// no existe campo Password aquí (vive únicamente en el draft).
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// EntityID devuelve el id asignado por el servidor.
func (u User) EntityID() int64 { return u.ID }

// Protected indica si la cuenta está protegida contra eliminación.
func (u User) Protected() bool { return u.Username == ReservedAdminUsername }
