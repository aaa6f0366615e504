package entity

// Status estado de activación compartido por proveedores y usuarios.
// Enumeración cerrada: el servidor solo emite estos dos valores.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// statusLabels mapeo exhaustivo código → etiqueta visible.
var statusLabels = map[Status]string{
	StatusActive:   "Activo",
	StatusInactive: "Inactivo",
}

// Label devuelve la etiqueta legible del estado; si el servidor enviara un
// valor fuera de la enumeración se muestra el código crudo.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid indica si el valor pertenece a la enumeración.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}
