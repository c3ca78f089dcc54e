package entity

import "github.com/shopspring/decimal"

// PlotType tipo de unidad vendible del camposanto.
type PlotType string

const (
	PlotTypeNiche     PlotType = "nicho"
	PlotTypeVault     PlotType = "boveda"
	PlotTypeMausoleum PlotType = "mausoleo"
)

// Valid reporta si el tipo es uno de los valores cerrados.
func (t PlotType) Valid() bool {
	switch t {
	case PlotTypeNiche, PlotTypeVault, PlotTypeMausoleum:
		return true
	}
	return false
}

// PlotStatus estado comercial de un terreno.
// Un terreno pasa a vendido exactamente cuando se crea una venta que lo
// referencia, y no puede venderse de nuevo mientras esté vendido.
type PlotStatus string

const (
	PlotStatusAvailable PlotStatus = "disponible"
	PlotStatusSold      PlotStatus = "vendido"
	PlotStatusReserved  PlotStatus = "reservado"
)

// Valid reporta si el estado es uno de los valores cerrados.
func (s PlotStatus) Valid() bool {
	switch s {
	case PlotStatusAvailable, PlotStatusSold, PlotStatusReserved:
		return true
	}
	return false
}

// Plot representa un terreno (lote/nicho) del camposanto.
type Plot struct {
	ID          string
	LotNumber   string // numero_lote
	Section     string // sección
	Block       string // manzana
	Price       decimal.Decimal
	Type        PlotType
	Status      PlotStatus
	Dimensions  string
	Description string
}

// Location identificador legible sección-manzana-lote para listados.
func (p *Plot) Location() string {
	return p.Section + "-" + p.Block + "-" + p.LotNumber
}
