// Package pages instancia el controlador CRUD genérico para cada recurso del
// back-office: categorías, productos, proveedores y usuarios. Aquí vive lo
// único que varía entre páginas: campos, reglas, colecciones relacionadas,
// proyección de filas y predicado de guard.
package pages

import (
	"context"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/internal/application/ports"
	"github.com/supply-manager/supply-admin/internal/interfaces/console"
	"github.com/supply-manager/supply-admin/pkg/logger"
)

// Deps dependencias compartidas por todas las páginas.
type Deps struct {
	Notify  ports.Notifier
	Confirm ports.Confirmer
	Log     *logger.Logger
}

// boundPage adapta un controlador tipado a la interfaz uniforme console.Page.
type boundPage[T crud.Record, D any] struct {
	title   string
	ctrl    *crud.Controller[T, D]
	project func(items []T, canDelete func(T) bool) console.Table
	stats   func() []string
}

func newBoundPage[T crud.Record, D any](
	title string,
	ctrl *crud.Controller[T, D],
	project func([]T, func(T) bool) console.Table,
	stats func() []string,
) console.Page {
	return &boundPage[T, D]{title: title, ctrl: ctrl, project: project, stats: stats}
}

func (p *boundPage[T, D]) Title() string                   { return p.title }
func (p *boundPage[T, D]) Load(ctx context.Context) error  { return p.ctrl.Load(ctx) }
func (p *boundPage[T, D]) Form() *crud.Form                { return p.ctrl.Form() }
func (p *boundPage[T, D]) OpenCreate()                     { p.ctrl.OpenCreate() }
func (p *boundPage[T, D]) Submit(ctx context.Context) error { return p.ctrl.Submit(ctx) }
func (p *boundPage[T, D]) CloseForm()                      { p.ctrl.CloseForm() }
func (p *boundPage[T, D]) Search(term string)              { p.ctrl.Search(term) }

func (p *boundPage[T, D]) OpenEdit(ctx context.Context, id int64) error {
	return p.ctrl.OpenEdit(ctx, id)
}

func (p *boundPage[T, D]) RequestDelete(ctx context.Context, id int64) error {
	return p.ctrl.RequestDelete(ctx, id)
}

func (p *boundPage[T, D]) Table() console.Table {
	return p.project(p.ctrl.Visible(), p.ctrl.CanDelete)
}

func (p *boundPage[T, D]) Stats() []string {
	if p.stats == nil {
		return nil
	}
	return p.stats()
}
