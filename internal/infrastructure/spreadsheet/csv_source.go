package spreadsheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/tu-usuario/mes-api/internal/application/auth"
)

var _ auth.RowSource = (*CSVSource)(nil)

// CSVSource recorre un .csv con las columnas de la plantilla. Tolera el BOM
// UTF-8 que Excel antepone al guardar.
type CSVSource struct {
	reader *csv.Reader
	idx    headerIndex
	done   bool
}

// NewCSVSource consume la fila de encabezado y deja el reader posicionado en
// la primera fila de datos.
func NewCSVSource(r io.Reader) (*CSVSource, error) {
	br := bufio.NewReader(r)
	// Saltar BOM UTF-8 si está presente
	if peek, err := br.Peek(3); err == nil && peek[0] == 0xEF && peek[1] == 0xBB && peek[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado csv: %w", err)
	}
	idx, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	return &CSVSource{reader: cr, idx: idx}, nil
}

// Next devuelve la siguiente fila con datos. Una línea malformada se reporta
// con ok=true y err; el consumo continúa en la línea siguiente.
func (s *CSVSource) Next() (auth.ImportUserRow, bool, error) {
	if s.done {
		return auth.ImportUserRow{}, false, nil
	}
	for {
		record, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			s.done = true
			return auth.ImportUserRow{}, false, nil
		}
		if err != nil {
			return auth.ImportUserRow{}, true, fmt.Errorf("línea ilegible: %w", err)
		}
		row := rowFromRecord(s.idx, record)
		if isBlankRow(row) {
			continue
		}
		return row, true, nil
	}
}
