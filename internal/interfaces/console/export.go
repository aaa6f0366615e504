package console

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportCSV vuelca la tabla actual (ya filtrada por la búsqueda vigente) como
// CSV. Se exportan las columnas de datos; el estado del control de eliminación
// es presentación y no viaja.
func ExportCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("export: escribir cabecera: %w", err)
	}
	for _, r := range t.Rows {
		if err := cw.Write(r.Cells); err != nil {
			return fmt.Errorf("export: escribir fila: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
