package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta. El tipo de pago queda fijo a partir
// de aquí: contado o crédito.
type CreateSaleRequest struct {
	ClienteID     string          `json:"cliente_id"`
	TerrenoID     string          `json:"terreno_id"`
	PrecioTotal   decimal.Decimal `json:"precio_total"`
	TipoPago      string          `json:"tipo_pago"` // contado | credito
	Observaciones string          `json:"observaciones,omitempty"`
}

// ClientSummary datos mínimos del cliente en listados de ventas y pagos.
type ClientSummary struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Cedula   string `json:"cedula"`
}

// PlotSummary datos mínimos del terreno en listados de ventas y pagos.
type PlotSummary struct {
	NumeroLote string `json:"numero_lote"`
	Seccion    string `json:"seccion"`
	Manzana    string `json:"manzana"`
}

// SaleResponse venta con cliente y terreno.
type SaleResponse struct {
	ID            string           `json:"id"`
	PrecioTotal   decimal.Decimal  `json:"precio_total"`
	TipoPago      string           `json:"tipo_pago"`
	FechaVenta    time.Time        `json:"fecha_venta"`
	Estado        string           `json:"estado"`
	Observaciones string           `json:"observaciones,omitempty"`
	NumCuotas     *int             `json:"num_cuotas,omitempty"`
	TasaInteres   *decimal.Decimal `json:"tasa_interes,omitempty"`
	Cliente       ClientSummary    `json:"cliente"`
	Terreno       PlotSummary      `json:"terreno"`
}

// SetupCreditRequest configuración del plan de crédito de una venta.
type SetupCreditRequest struct {
	NumCuotas   int             `json:"num_cuotas"`
	TasaInteres decimal.Decimal `json:"tasa_interes"` // anual, en % (0-100)
}

// ScheduleResponse plan de cuotas generado.
type ScheduleResponse struct {
	VentaID      string                `json:"venta_id"`
	NumCuotas    int                   `json:"num_cuotas"`
	TasaInteres  decimal.Decimal       `json:"tasa_interes"`
	TotalAPagar  decimal.Decimal       `json:"total_a_pagar"`
	InteresTotal decimal.Decimal       `json:"interes_total"`
	Cuotas       []InstallmentResponse `json:"cuotas"`
}
