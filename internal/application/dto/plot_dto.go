package dto

import "github.com/shopspring/decimal"

// CreatePlotRequest alta de terreno. Estado vacío equivale a disponible.
type CreatePlotRequest struct {
	NumeroLote  string          `json:"numero_lote"`
	Seccion     string          `json:"seccion"`
	Manzana     string          `json:"manzana"`
	Precio      decimal.Decimal `json:"precio"`
	Tipo        string          `json:"tipo"` // nicho | boveda | mausoleo
	Estado      string          `json:"estado,omitempty"`
	Dimensiones string          `json:"dimensiones,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// UpdatePlotRequest edición de terreno.
type UpdatePlotRequest struct {
	NumeroLote  string          `json:"numero_lote"`
	Seccion     string          `json:"seccion"`
	Manzana     string          `json:"manzana"`
	Precio      decimal.Decimal `json:"precio"`
	Tipo        string          `json:"tipo"`
	Estado      string          `json:"estado"`
	Dimensiones string          `json:"dimensiones,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
}

// PlotResponse terreno en respuestas.
type PlotResponse struct {
	ID          string          `json:"id"`
	NumeroLote  string          `json:"numero_lote"`
	Seccion     string          `json:"seccion"`
	Manzana     string          `json:"manzana"`
	Precio      decimal.Decimal `json:"precio"`
	Tipo        string          `json:"tipo"`
	Estado      string          `json:"estado"`
	Dimensiones string          `json:"dimensiones,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
}
