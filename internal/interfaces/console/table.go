package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row proyección de una entidad a una fila de la tabla. Cells cubre todas las
// columnas de Header; CanDelete refleja el guard de eliminación y deshabilita
// el control correspondiente en la columna de acciones.
type Row struct {
	ID        int64
	Cells     []string
	CanDelete bool
}

// Table proyección completa de la colección visible de una página.
type Table struct {
	Header []string
	Rows   []Row
	Empty  string // fila única cuando no hay registros ("Ninguna categoría encontrada")
}

// Render escribe la tabla alineada por columnas. La columna final "Eliminar"
// muestra "sí" o "bloqueado" según el guard; una colección vacía produce una
// única fila de marcador en lugar de un cuerpo vacío.
func Render(w io.Writer, t Table) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t")+"\tEliminar")
	if len(t.Rows) == 0 {
		fmt.Fprintln(tw, t.Empty)
	}
	for _, r := range t.Rows {
		del := "sí"
		if !r.CanDelete {
			del = "bloqueado"
		}
		fmt.Fprintln(tw, strings.Join(r.Cells, "\t")+"\t"+del)
	}
	tw.Flush()
}

// ptBR formatea números al estilo brasileño (la moneda del back-office es BRL).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency presenta un precio: R$ 1.234,56.
func FormatCurrency(d decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", d.InexactFloat64())
}

// FormatDate presenta una fecha corta, o "-" si no viene del servidor.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// Dash sustituye un valor opcional vacío por "-".
func Dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
