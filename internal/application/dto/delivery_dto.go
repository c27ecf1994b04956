package dto

import "github.com/shopspring/decimal"

// CreateDeliveryRequest entrada para crear o actualizar un registro de entrega.
// Las fechas viajan como "YYYY-MM-DD" y se parsean en el use case.
// Factory se acepta en el body pero se ignora: al crear se estampa la del
// token del llamador y al actualizar nunca cambia.
type CreateDeliveryRequest struct {
	BlNo         string           `json:"blNo"`
	Customer     string           `json:"customer"`
	Style        *string          `json:"style,omitempty"`
	PoNo         *string          `json:"poNo,omitempty"`
	Rolls        *decimal.Decimal `json:"rolls,omitempty"`
	Etd          *string          `json:"etd,omitempty"`
	Eta          *string          `json:"eta,omitempty"`
	FtyEta       *string          `json:"ftyEta,omitempty"`
	ArriveStatus string           `json:"arriveStatus"`
	Factory      string           `json:"factory,omitempty"`
}

// DeliveryResponse salida de un registro de entrega.
type DeliveryResponse struct {
	ID           int64            `json:"id"`
	BlNo         string           `json:"blNo"`
	Customer     string           `json:"customer"`
	Style        *string          `json:"style,omitempty"`
	PoNo         *string          `json:"poNo,omitempty"`
	Rolls        *decimal.Decimal `json:"rolls,omitempty"`
	Etd          *string          `json:"etd,omitempty"`
	Eta          *string          `json:"eta,omitempty"`
	FtyEta       *string          `json:"ftyEta,omitempty"`
	ArriveStatus string           `json:"arriveStatus"`
	Factory      string           `json:"factory"`
}
