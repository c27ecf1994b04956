package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/mes-api/internal/application/auth"
)

var _ auth.RowSource = (*XLSXSource)(nil)

// XLSXSource recorre la primera hoja de un .xlsx de forma perezosa con el
// iterador de excelize.
type XLSXSource struct {
	file *excelize.File
	rows *excelize.Rows
	idx  headerIndex
}

// NewXLSXSource abre el archivo, ubica la primera hoja y consume la fila de
// encabezado. Falla si el archivo no es un XLSX válido o el encabezado no
// trae las columnas esperadas.
func NewXLSXSource(r io.Reader) (*XLSXSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	sheet := f.GetSheetName(0)
	if sheet == "" {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx sin hojas")
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	if !rows.Next() {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("xlsx vacío: falta la fila de encabezado")
	}
	header, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	idx, err := parseHeader(header)
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, err
	}
	return &XLSXSource{file: f, rows: rows, idx: idx}, nil
}

// Next devuelve la siguiente fila con datos. Una fila ilegible se reporta con
// ok=true y err para que el lote continúe.
func (s *XLSXSource) Next() (auth.ImportUserRow, bool, error) {
	for s.rows.Next() {
		record, err := s.rows.Columns()
		if err != nil {
			return auth.ImportUserRow{}, true, fmt.Errorf("fila ilegible: %w", err)
		}
		row := rowFromRecord(s.idx, record)
		if isBlankRow(row) {
			continue
		}
		return row, true, nil
	}
	return auth.ImportUserRow{}, false, nil
}

// Close libera el iterador y el archivo.
func (s *XLSXSource) Close() error {
	_ = s.rows.Close()
	return s.file.Close()
}
