package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/supply-manager/supply-admin/internal/application/crud"
	"github.com/supply-manager/supply-admin/internal/application/ports"
)

// Verificar en tiempo de compilación que Prompt implementa el puerto.
var _ ports.Confirmer = (*Prompt)(nil)

// Prompt entrada interactiva por líneas sobre stdin.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt construye el prompt.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Line pide una línea; devuelve el texto sin el salto final.
func (p *Prompt) Line(label string) string {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// Confirm pregunta s/n; solo una respuesta afirmativa explícita confirma.
func (p *Prompt) Confirm(question string) bool {
	ans := strings.ToLower(p.Line(question + " (s/n): "))
	return ans == "s" || ans == "si" || ans == "sí"
}

// EditForm recorre los campos del formulario mostrando el valor vigente;
// una línea vacía lo conserva (así un reintento tras error preserva lo
// tecleado). Para selects se muestran las opciones permitidas.
func (p *Prompt) EditForm(f *crud.Form) {
	for _, fd := range f.Fields() {
		label := fd.Label
		if len(fd.Options) > 0 {
			label += " [" + strings.Join(fd.Options, "/") + "]"
		}
		current := f.Value(fd.Key)
		if current != "" {
			label += " (" + current + ")"
		}
		if v := p.Line(label + ": "); v != "" {
			f.Set(fd.Key, v)
		}
	}
}
