package console

import (
	"fmt"
	"io"

	"github.com/supply-manager/supply-admin/internal/application/ports"
	"github.com/supply-manager/supply-admin/pkg/logger"
)

// Verificar en tiempo de compilación que Notify implementa el puerto.
var _ ports.Notifier = (*Notify)(nil)

// Notify imprime notificaciones en la terminal. Son el equivalente de los
// avisos transitorios de una página: una línea que el scroll se lleva; ningún
// error es fatal y la consola sigue operativa después de cualquiera.
type Notify struct {
	out io.Writer
	log *logger.Logger
}

// NewNotify construye el notificador.
func NewNotify(out io.Writer, log *logger.Logger) *Notify {
	return &Notify{out: out, log: log}
}

// Success informa el resultado de una operación confirmada.
func (n *Notify) Success(msg string) {
	fmt.Fprintln(n.out, "✔ "+msg)
}

// Error informa un fallo al usuario y deja la traza para el desarrollador.
func (n *Notify) Error(msg string) {
	fmt.Fprintln(n.out, "✖ "+msg)
	n.log.Debug().Msg(msg)
}
