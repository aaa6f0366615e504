// Package ports define los puertos de salida de la capa de aplicación.
// Siguiendo el principio de inversión de dependencias, los controladores solo
// conocen estos contratos, no los adaptadores concretos (REST, consola, mocks).
package ports

import "context"

// Resource puerto CRUD contra la API REST para una familia de recursos.
// T es la entidad que devuelve el servidor y D el draft que envía el cliente.
// Cada método emite exactamente una petición; un fallo se propaga de inmediato,
// sin reintentos.
type Resource[T any, D any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, draft D) (*T, error)
	Update(ctx context.Context, id int64, draft D) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Lister vista de solo lectura de un recurso, suficiente para colecciones
// relacionadas (joins de presentación y evaluación de guards).
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// Notifier presenta notificaciones transitorias al usuario. Cualquier error
// (transporte, rechazo remoto, validación o guard) se reporta por aquí y la
// página sigue siendo usable.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer pide confirmación interactiva antes de una acción destructiva.
type Confirmer interface {
	Confirm(question string) bool
}
