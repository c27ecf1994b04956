// Package pdf implementa la hoja imprimible de la tabla de entregas
// (estimación de llegadas a planta) usando Maroto v2.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appdelivery "github.com/tu-usuario/mes-api/internal/application/delivery"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

var _ appdelivery.SheetPDFGenerator = (*MarotoSheetGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoSheetGenerator implementa delivery.SheetPDFGenerator usando Maroto v2.
type MarotoSheetGenerator struct{}

// NewMarotoSheetGenerator construye el generador.
func NewMarotoSheetGenerator() *MarotoSheetGenerator { return &MarotoSheetGenerator{} }

// GenerateDeliverySheet genera el PDF (A4 apaisado) y devuelve sus bytes.
// Las filas llegan ya ordenadas por el use case.
func (g *MarotoSheetGenerator) GenerateDeliverySheet(
	_ context.Context,
	factory string,
	deliveries []*entity.DeliveryOverview,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Estimación de llegadas a planta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(factory, len(deliveries)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, d := range deliveries {
		m.AddRows(deliveryRow(d))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y planta + fecha de emisión (der).
func headerRow(factory string, total int) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("ESTIMACIÓN DE LLEGADAS A PLANTA", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d registros", total), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Planta: "+factory, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("B/L No.", 2, align.Left),
		h("Cliente", 2, align.Left),
		h("Estilo", 1, align.Left),
		h("PO No.", 1, align.Left),
		h("Rollos", 1, align.Right),
		h("ETD", 1, align.Center),
		h("ETA", 1, align.Center),
		h("ETA planta", 1, align.Center),
		h("Estado", 1, align.Center),
		h("Planta", 1, align.Center),
	)
}

// deliveryRow: una fila por registro.
func deliveryRow(d *entity.DeliveryOverview) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	rolls := ""
	if d.Rolls != nil {
		rolls = d.Rolls.String()
	}
	return row.New(6).Add(
		cell(d.BlNo, 2, align.Left),
		cell(d.Customer, 2, align.Left),
		cell(strOrDash(d.Style), 1, align.Left),
		cell(strOrDash(d.PoNo), 1, align.Left),
		cell(rolls, 1, align.Right),
		cell(dateOrDash(d.Etd), 1, align.Center),
		cell(dateOrDash(d.Eta), 1, align.Center),
		cell(dateOrDash(d.FtyEta), 1, align.Center),
		cell(d.ArriveStatus.String(), 1, align.Center),
		cell(d.Factory.String(), 1, align.Center),
	)
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("2006-01-02")
}
