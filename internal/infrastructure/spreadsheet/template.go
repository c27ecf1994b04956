package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// templateHeader columnas de la plantilla de import de usuarios.
var templateHeader = []string{columnUsername, columnFactory, columnPassword}

// exampleRow fila de ejemplo para orientar al usuario; Password en blanco
// para que el backend genere una.
var exampleRow = []string{"operario01", "TPL", ""}

// BuildTemplateXLSX genera la plantilla .xlsx descargable.
func BuildTemplateXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &templateHeader); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &exampleRow); err != nil {
		return nil, fmt.Errorf("escribir fila de ejemplo: %w", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildTemplateCSV genera la plantilla .csv descargable. Antepone el BOM
// UTF-8 para que Excel la abra con la codificación correcta.
func BuildTemplateCSV() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(templateHeader); err != nil {
		return nil, err
	}
	if err := w.Write(exampleRow); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
