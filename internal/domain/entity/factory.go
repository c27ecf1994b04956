package entity

import "fmt"

// Factory identifica la planta a la que pertenece un registro.
// En el wire (JSON, claim JWT, celdas de import) viaja siempre como string;
// ParseFactory es el único camino de entrada y rechaza valores desconocidos.
type Factory string

// Plantas válidas.
const (
	FactoryTPL Factory = "TPL"
	FactoryNVN Factory = "NVN"
	FactoryLR  Factory = "LR"
)

// ParseFactory convierte un string del wire al enum. Nunca aplica un default
// silencioso: un valor no reconocido es un error.
func ParseFactory(s string) (Factory, error) {
	switch Factory(s) {
	case FactoryTPL, FactoryNVN, FactoryLR:
		return Factory(s), nil
	}
	return "", fmt.Errorf("fábrica no reconocida: %q", s)
}

// String devuelve la representación de wire.
func (f Factory) String() string { return string(f) }

// ArriveStatus estado de llegada de una entrega.
type ArriveStatus string

// Estados válidos.
const (
	ArriveOnTime  ArriveStatus = "OnTime"  // como se espera o ya llegó
	ArriveDelayed ArriveStatus = "Delayed" // retrasada o aún sin llegar
)

// ParseArriveStatus convierte un string del wire al enum, con rechazo explícito.
func ParseArriveStatus(s string) (ArriveStatus, error) {
	switch ArriveStatus(s) {
	case ArriveOnTime, ArriveDelayed:
		return ArriveStatus(s), nil
	}
	return "", fmt.Errorf("estado de llegada no reconocido: %q", s)
}

// String devuelve la representación de wire.
func (s ArriveStatus) String() string { return string(s) }
