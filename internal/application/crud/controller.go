// Package crud implementa el controlador genérico de página CRUD: el mismo
// ciclo cargar → renderizar → editar → guardar → eliminar → buscar que
// comparten las cuatro páginas del back-office, parametrizado por entidad.
package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supply-manager/supply-admin/internal/application/ports"
	"github.com/supply-manager/supply-admin/pkg/logger"
)

// ErrFormClosed Submit sin formulario abierto; indica un error de programación
// de la capa de interfaz, no una condición del usuario.
var ErrFormClosed = errors.New("no hay formulario abierto")

// Config parametriza el controlador para un tipo de recurso. Los campos de
// función (Fill, Draft, Guard, SearchText) son el único punto de extensión por
// entidad; el resto del ciclo es idéntico para las cuatro páginas.
type Config[T Record, D any] struct {
	// Singular en minúsculas para mensajes de error ("categoría").
	Singular string
	// Plural en minúsculas para mensajes de carga ("categorías").
	Plural string

	// Mensajes de éxito por operación, ya con el género correcto
	// ("Categoría creada", "Producto creado").
	CreatedMsg string
	UpdatedMsg string
	DeletedMsg string
	// Pregunta de confirmación previa a eliminar.
	ConfirmMsg string

	// Resource puerto CRUD de la colección primaria.
	Resource ports.Resource[T, D]
	// Related colecciones secundarias: se cargan junto con la primaria y se
	// recargan tras cada mutación confirmada (los contadores dependen de ellas).
	Related []Reloadable

	// Form formulario modal de la página y sus reglas de validación.
	Form  *Form
	Rules []Rule

	// Fill puebla el formulario con la entidad obtenida al editar.
	Fill func(f *Form, item T)
	// Draft construye el payload a partir del formulario ya validado.
	Draft func(f *Form, editing bool) D
	// Guard precondición de eliminación; un error (normalmente *domain.GuardError)
	// bloquea la operación sin llamada de red ni confirmación. nil = sin guard.
	Guard func(item T) error
	// SearchText texto sobre el que filtra la búsqueda, por entidad.
	SearchText func(item T) string
}

// Controller orquesta una página CRUD. Todo el estado (caché, filtro de
// búsqueda, objetivo de edición) vive en la instancia: se construye al activar
// la página y se descarta al navegar fuera; no hay estado global de proceso.
type Controller[T Record, D any] struct {
	cfg     Config[T, D]
	cache   *Collection[T]
	notify  ports.Notifier
	confirm ports.Confirmer
	log     *logger.Logger

	// Objetivo de edición: el formulario está abierto si editing es true;
	// editID 0 significa creación, cualquier otro valor es el id en edición.
	editing bool
	editID  int64

	search string
}

// New construye el controlador de página.
func New[T Record, D any](cfg Config[T, D], notify ports.Notifier, confirm ports.Confirmer, log *logger.Logger) *Controller[T, D] {
	return &Controller[T, D]{
		cfg:     cfg,
		cache:   NewCollection[T](cfg.Resource),
		notify:  notify,
		confirm: confirm,
		log:     log,
	}
}

// Load obtiene la colección primaria y las relacionadas al activar la página.
// Un fallo de la primaria se reporta al usuario; un fallo de una relacionada
// solo se traza (la página sigue usable, igual que en el resto del patrón:
// los contadores quedan en cero hasta la próxima recarga).
func (c *Controller[T, D]) Load(ctx context.Context) error {
	if err := c.cache.Reload(ctx); err != nil {
		c.notify.Error(fmt.Sprintf("Error al cargar %s: %s", c.cfg.Plural, err))
		return err
	}
	c.reloadRelated(ctx)
	return nil
}

func (c *Controller[T, D]) reloadRelated(ctx context.Context) {
	for _, rel := range c.cfg.Related {
		if err := rel.Reload(ctx); err != nil {
			c.log.Debug().Err(err).Str("recurso", c.cfg.Plural).Msg("cargar colección relacionada")
		}
	}
}

// reload recarga todo tras una mutación confirmada: la caché nunca se muta de
// forma optimista, siempre se vuelve a listar.
func (c *Controller[T, D]) reload(ctx context.Context) {
	if err := c.cache.Reload(ctx); err != nil {
		c.log.Debug().Err(err).Str("recurso", c.cfg.Plural).Msg("recargar colección primaria")
	}
	c.reloadRelated(ctx)
}

// Primary expone la caché primaria (contadores de cabecera, lookups de página).
func (c *Controller[T, D]) Primary() *Collection[T] { return c.cache }

// FormOpen indica si el formulario modal está abierto.
func (c *Controller[T, D]) FormOpen() bool { return c.editing }

// Creating indica si el formulario abierto corresponde a una entidad nueva.
func (c *Controller[T, D]) Creating() bool { return c.editing && c.editID == 0 }

// EditTarget id en edición; 0 si se está creando o no hay formulario abierto.
func (c *Controller[T, D]) EditTarget() int64 { return c.editID }

// Form devuelve el formulario de la página.
func (c *Controller[T, D]) Form() *Form { return c.cfg.Form }

// OpenCreate abre el formulario vacío para una entidad nueva.
func (c *Controller[T, D]) OpenCreate() {
	c.editing = true
	c.editID = 0
	c.cfg.Form.Reset()
}

// OpenEdit obtiene la entidad fresca del servidor (nunca de la caché), puebla
// el formulario y fija el objetivo de edición. Si la llamada falla se reporta
// el error y el estado queda como estaba.
func (c *Controller[T, D]) OpenEdit(ctx context.Context, id int64) error {
	item, err := c.cfg.Resource.Get(ctx, id)
	if err != nil {
		c.notify.Error(fmt.Sprintf("Error al cargar %s: %s", c.cfg.Singular, err))
		return err
	}
	c.cfg.Form.Reset()
	c.cfg.Fill(c.cfg.Form, *item)
	c.editing = true
	c.editID = id
	return nil
}

// Submit valida el formulario y crea o actualiza según el objetivo. En éxito
// cierra el formulario, recarga las colecciones y notifica con el texto de
// creación o actualización. En fallo (validación o remoto) el formulario queda
// abierto con los valores intactos para reintentar.
func (c *Controller[T, D]) Submit(ctx context.Context) error {
	if !c.editing {
		return ErrFormClosed
	}
	creating := c.editID == 0
	if err := c.cfg.Form.Validate(c.cfg.Rules, creating); err != nil {
		c.notify.Error(err.Error())
		return err
	}

	draft := c.cfg.Draft(c.cfg.Form, !creating)
	var err error
	if creating {
		_, err = c.cfg.Resource.Create(ctx, draft)
	} else {
		_, err = c.cfg.Resource.Update(ctx, c.editID, draft)
	}
	if err != nil {
		c.notify.Error(fmt.Sprintf("Error al guardar %s: %s", c.cfg.Singular, err))
		return err
	}

	c.CloseForm()
	c.reload(ctx)
	if creating {
		c.notify.Success(c.cfg.CreatedMsg)
	} else {
		c.notify.Success(c.cfg.UpdatedMsg)
	}
	return nil
}

// RequestDelete evalúa el guard de eliminación y, solo si lo pasa, pide
// confirmación y llama al servidor. El guard corre antes que la confirmación:
// una entidad bloqueada nunca llega al prompt ni a la red. En éxito recarga y
// notifica; en fallo remoto el estado local queda sin cambios.
func (c *Controller[T, D]) RequestDelete(ctx context.Context, id int64) error {
	item, ok := c.cache.FindByID(id)
	if !ok {
		c.notify.Error(fmt.Sprintf("No se encontró %s con id %d", c.cfg.Singular, id))
		return fmt.Errorf("%s %d: no está en la lista", c.cfg.Singular, id)
	}
	if c.cfg.Guard != nil {
		if err := c.cfg.Guard(item); err != nil {
			c.notify.Error(err.Error())
			return err
		}
	}
	if !c.confirm.Confirm(c.cfg.ConfirmMsg) {
		return nil
	}
	if err := c.cfg.Resource.Delete(ctx, id); err != nil {
		c.notify.Error(fmt.Sprintf("Error al eliminar %s: %s", c.cfg.Singular, err))
		return err
	}
	c.reload(ctx)
	c.notify.Success(c.cfg.DeletedMsg)
	return nil
}

// CloseForm cierra el formulario y limpia sus valores.
func (c *Controller[T, D]) CloseForm() {
	c.editing = false
	c.editID = 0
	c.cfg.Form.Reset()
}

// CanDelete indica si el guard permitiría eliminar la entidad; la tabla lo usa
// para deshabilitar el control de eliminación exactamente en esos casos.
func (c *Controller[T, D]) CanDelete(item T) bool {
	return c.cfg.Guard == nil || c.cfg.Guard(item) == nil
}

// Search fija el filtro de búsqueda; término vacío restaura la vista completa.
func (c *Controller[T, D]) Search(term string) {
	c.search = strings.ToLower(strings.TrimSpace(term))
}

// SearchTerm filtro vigente (ya normalizado).
func (c *Controller[T, D]) SearchTerm() string { return c.search }

// Visible devuelve las entidades que pasan el filtro de búsqueda, en el orden
// del servidor. Sin filtro devuelve la colección completa.
func (c *Controller[T, D]) Visible() []T {
	items := c.cache.Items()
	if c.search == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(c.cfg.SearchText(it)), c.search) {
			out = append(out, it)
		}
	}
	return out
}
