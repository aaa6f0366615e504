// Package console implementa la interfaz de terminal del back-office: menú de
// recursos, páginas CRUD, tablas y formularios. Es el análogo de las páginas
// del navegador; la lógica de ciclo vive en internal/application/crud.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/pkg/logger"
)

// Page página CRUD ya ligada a su tipo de entidad. Las cuatro implementaciones
// salen del mismo controlador genérico; esta interfaz borra el parámetro de
// tipo para que el bucle de navegación las trate uniformemente.
type Page interface {
	Title() string
	Load(ctx context.Context) error
	// Table proyecta las filas visibles (respetando la búsqueda vigente).
	Table() Table
	// Stats contadores de cabecera de la página; vacío si no aplica.
	Stats() []string
	Form() *crud.Form
	OpenCreate()
	OpenEdit(ctx context.Context, id int64) error
	Submit(ctx context.Context) error
	CloseForm()
	RequestDelete(ctx context.Context, id int64) error
	Search(term string)
}

// Console bucle de navegación entre páginas. Cada visita a una página crea una
// sesión con su propio contexto, cancelado al volver al menú: una respuesta
// tardía no puede tocar una página ya abandonada.
type Console struct {
	pages  []Page
	prompt *Prompt
	notify *Notify
	out    io.Writer
	log    *logger.Logger
}

// New construye la consola.
func New(pages []Page, prompt *Prompt, notify *Notify, out io.Writer, log *logger.Logger) *Console {
	return &Console{pages: pages, prompt: prompt, notify: notify, out: out, log: log}
}

// Run muestra el menú principal hasta que el operador salga o el contexto se
// cancele.
func (c *Console) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "── supply-admin ──")
		for i, p := range c.pages {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, p.Title())
		}
		fmt.Fprintln(c.out, "0. Salir")

		choice := c.prompt.Line("Opción: ")
		if choice == "0" || strings.EqualFold(choice, "salir") {
			return nil
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > len(c.pages) {
			c.notify.Error("Opción inválida")
			continue
		}

		// Sesión de página: contexto propio, cancelado al navegar fuera.
		pctx, cancel := context.WithCancel(ctx)
		c.runPage(pctx, c.pages[idx-1])
		cancel()
	}
}

func (c *Console) runPage(ctx context.Context, p Page) {
	_ = p.Load(ctx) // el error ya fue notificado; la página sigue operativa
	c.show(p)

	for {
		if ctx.Err() != nil {
			return
		}
		cmd := c.prompt.Line("\n[" + p.Title() + "] l=listar n=nuevo e ID=editar d ID=eliminar b=buscar x=exportar v=volver: ")
		verb, arg, _ := strings.Cut(cmd, " ")
		switch strings.ToLower(verb) {
		case "v", "volver", "":
			if verb == "" {
				continue
			}
			return
		case "l", "listar":
			c.show(p)
		case "n", "nuevo", "nueva":
			p.OpenCreate()
			c.fillAndSubmit(ctx, p)
			c.show(p)
		case "e", "editar":
			id, ok := c.parseID(arg)
			if !ok {
				continue
			}
			if err := p.OpenEdit(ctx, id); err != nil {
				continue
			}
			c.fillAndSubmit(ctx, p)
			c.show(p)
		case "d", "eliminar":
			id, ok := c.parseID(arg)
			if !ok {
				continue
			}
			_ = p.RequestDelete(ctx, id)
			c.show(p)
		case "b", "buscar":
			term := c.prompt.Line("Buscar (vacío = todos): ")
			p.Search(term)
			c.show(p)
		case "x", "exportar":
			c.export(p)
		default:
			c.notify.Error("Comando desconocido: " + verb)
		}
	}
}

// fillAndSubmit recorre el formulario y lo envía; si el envío falla (validación
// o remoto) el formulario queda abierto con los valores intactos y se ofrece
// reintentar. Abandonar cierra el formulario sin enviar nada.
func (c *Console) fillAndSubmit(ctx context.Context, p Page) {
	c.prompt.EditForm(p.Form())
	for p.Submit(ctx) != nil {
		if !c.prompt.Confirm("¿Corregir y reintentar?") {
			p.CloseForm()
			return
		}
		c.prompt.EditForm(p.Form())
	}
}

func (c *Console) show(p Page) {
	fmt.Fprintln(c.out)
	if stats := p.Stats(); len(stats) > 0 {
		fmt.Fprintln(c.out, strings.Join(stats, " · "))
	}
	Render(c.out, p.Table())
}

func (c *Console) parseID(arg string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		c.notify.Error("Indique un id válido (ej.: e 3)")
		return 0, false
	}
	return id, true
}

func (c *Console) export(p Page) {
	name := fmt.Sprintf("%s-%s.csv", strings.ToLower(p.Title()), time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		c.notify.Error("No se pudo crear el archivo de exportación: " + err.Error())
		return
	}
	defer f.Close()
	if err := ExportCSV(f, p.Table()); err != nil {
		c.notify.Error("Error al exportar: " + err.Error())
		return
	}
	c.notify.Success("Exportado a " + name)
}
