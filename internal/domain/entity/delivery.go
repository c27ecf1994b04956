package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryOverview fila de la tabla de estimación de llegadas a planta.
// Factory se estampa al crear desde el claim del token del llamador y es
// inmutable después (los updates nunca la tocan).
type DeliveryOverview struct {
	ID           int64
	BlNo         string // número de bill of lading, requerido, máx. 50
	Customer     string // requerido, máx. 100
	Style        *string
	PoNo         *string
	Rolls        *decimal.Decimal // cantidad de rollos de tela
	Etd          *time.Time       // salida estimada
	Eta          *time.Time       // llegada estimada a puerto
	FtyEta       *time.Time       // llegada estimada a planta
	ArriveStatus ArriveStatus
	Factory      Factory
}
