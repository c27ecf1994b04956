// Package spreadsheet adapta archivos XLSX y CSV al puerto auth.RowSource.
// El core nunca ve la librería de parsing: de aquí solo salen filas tipadas.
package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/mes-api/internal/application/auth"
)

// Columnas esperadas en la plantilla de import (Password es opcional).
const (
	columnUsername = "Username"
	columnFactory  = "Factory"
	columnPassword = "Password"
)

// headerIndex posición de cada columna según la fila de encabezado.
type headerIndex struct {
	username int
	factory  int
	password int // -1 si la columna no está
}

// parseHeader localiza las columnas por nombre (sin distinguir mayúsculas).
// Username y Factory son obligatorias.
func parseHeader(header []string) (headerIndex, error) {
	idx := headerIndex{username: -1, factory: -1, password: -1}
	for i, col := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(col), columnUsername):
			idx.username = i
		case strings.EqualFold(strings.TrimSpace(col), columnFactory):
			idx.factory = i
		case strings.EqualFold(strings.TrimSpace(col), columnPassword):
			idx.password = i
		}
	}
	if idx.username < 0 || idx.factory < 0 {
		return idx, fmt.Errorf("encabezado inválido: se esperan columnas %s y %s", columnUsername, columnFactory)
	}
	return idx, nil
}

// rowFromRecord arma la fila tipada a partir de las celdas crudas.
func rowFromRecord(idx headerIndex, record []string) auth.ImportUserRow {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return auth.ImportUserRow{
		Username: cell(idx.username),
		Factory:  cell(idx.factory),
		Password: cell(idx.password),
	}
}

// isBlankRow filas completamente vacías se saltan (líneas en blanco al final
// del archivo, típicas de Excel).
func isBlankRow(row auth.ImportUserRow) bool {
	return row.Username == "" && row.Factory == "" && row.Password == ""
}
