package delivery

import (
	"context"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// SheetPDFGenerator renderiza la tabla de entregas como PDF imprimible.
// La librería de PDF queda fuera del core; aquí solo entran entidades.
type SheetPDFGenerator interface {
	GenerateDeliverySheet(ctx context.Context, factory string, deliveries []*entity.DeliveryOverview) ([]byte, error)
}
