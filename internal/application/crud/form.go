package crud

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate instancia única de go-playground/validator para los chequeos de
// formato de campo (email). Es segura para uso concurrente.
var validate = validator.New()

// FieldKind tipo de dato de un campo del formulario; determina el chequeo de
// formato que se aplica cuando el valor no está vacío.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldEmail
	FieldDecimal // número decimal no negativo (precio)
	FieldInt     // entero no negativo (stock)
	FieldSelect  // valor restringido a Options
)

// Field describe un campo del formulario modal.
type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Options []string // valores permitidos cuando Kind == FieldSelect
	Default string   // valor tras Reset
}

// Form liga los campos del formulario modal a la entidad en edición. Los
// valores se conservan tal cual los tecleó el usuario; la conversión a tipos
// del draft ocurre después de validar.
type Form struct {
	fields []Field
	values map[string]string
}

// NewForm construye el formulario con sus campos en orden de presentación.
func NewForm(fields ...Field) *Form {
	f := &Form{fields: fields, values: make(map[string]string, len(fields))}
	f.Reset()
	return f
}

// Fields devuelve los campos en orden de presentación.
func (f *Form) Fields() []Field { return f.fields }

// Reset vuelve todos los campos a su valor por defecto.
func (f *Form) Reset() {
	for _, fd := range f.fields {
		f.values[fd.Key] = fd.Default
	}
}

// Set escribe el valor crudo de un campo.
func (f *Form) Set(key, value string) { f.values[key] = value }

// Value lee el valor crudo de un campo.
func (f *Form) Value(key string) string { return f.values[key] }

// Decimal convierte el valor a decimal; cero si está vacío o malformado
// (la validación previa ya garantizó el formato).
func (f *Form) Decimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(f.values[key]))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int convierte el valor a entero; cero si está vacío o malformado.
func (f *Form) Int(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(f.values[key]))
	if err != nil {
		return 0
	}
	return n
}

// OptionalID convierte el valor a referencia opcional: vacío → nil.
func (f *Form) OptionalID(key string) *int64 {
	v := strings.TrimSpace(f.values[key])
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// Rule regla de validación sobre un campo, evaluada antes de cualquier llamada
// de red. Label se usa en el mensaje visible ("El nombre es obligatorio").
type Rule struct {
	Field      string
	Label      string
	Required   bool
	CreateOnly bool // la regla solo aplica al crear (ej. contraseña de usuario nuevo)
}

// ValidationError violación de una regla del formulario; nunca llega a la red.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate evalúa las reglas en orden y se detiene en la primera que falla
// (comportamiento documentado: un solo error por intento, como el resto del
// patrón). Los chequeos de formato solo corren sobre valores no vacíos.
func (f *Form) Validate(rules []Rule, creating bool) error {
	for _, r := range rules {
		if r.CreateOnly && !creating {
			continue
		}
		v := strings.TrimSpace(f.Value(r.Field))
		if r.Required && v == "" {
			return &ValidationError{Field: r.Field, Message: r.Label + " es obligatorio"}
		}
	}
	for _, fd := range f.fields {
		v := strings.TrimSpace(f.Value(fd.Key))
		if v == "" {
			continue
		}
		if err := checkFormat(fd, v); err != nil {
			return err
		}
	}
	return nil
}

func checkFormat(fd Field, v string) error {
	switch fd.Kind {
	case FieldEmail:
		if err := validate.Var(v, "email"); err != nil {
			return &ValidationError{Field: fd.Key, Message: fd.Label + " debe ser un email válido"}
		}
	case FieldDecimal:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return &ValidationError{Field: fd.Key, Message: fd.Label + " debe ser un número válido"}
		}
		if d.IsNegative() {
			return &ValidationError{Field: fd.Key, Message: fd.Label + " no puede ser negativo"}
		}
	case FieldInt:
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Field: fd.Key, Message: fd.Label + " debe ser un número entero"}
		}
		if n < 0 {
			return &ValidationError{Field: fd.Key, Message: fd.Label + " no puede ser negativo"}
		}
	case FieldSelect:
		for _, opt := range fd.Options {
			if v == opt {
				return nil
			}
		}
		return &ValidationError{Field: fd.Key, Message: fd.Label + " no es una opción válida"}
	}
	return nil
}
