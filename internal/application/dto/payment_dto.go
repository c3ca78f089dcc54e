package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest registro de un pago contra una cuota.
type RecordPaymentRequest struct {
	MontoPagado decimal.Decimal `json:"monto_pagado"`
}

// InstallmentResponse cuota en respuestas. EstadoVisual es la clasificación
// derivada Pagado/Vencido/Pendiente, calculada contra la fecha actual.
type InstallmentResponse struct {
	ID               string           `json:"id"`
	VentaID          string           `json:"venta_id"`
	NumeroCuota      int              `json:"numero_cuota"`
	MontoCuota       decimal.Decimal  `json:"monto_cuota"`
	FechaVencimiento time.Time        `json:"fecha_vencimiento"`
	Estado           string           `json:"estado"`
	EstadoVisual     string           `json:"estado_visual"`
	FechaPago        *time.Time       `json:"fecha_pago,omitempty"`
	MontoPagado      *decimal.Decimal `json:"monto_pagado,omitempty"`
	InteresAplicado  *decimal.Decimal `json:"interes_aplicado,omitempty"`
}

// PaymentListItem cuota con los datos de cliente y terreno de su venta.
type PaymentListItem struct {
	InstallmentResponse
	Cliente ClientSummary `json:"cliente"`
	Terreno PlotSummary   `json:"terreno"`
}

// PaymentSummaryResponse tarjetas del panel de pagos.
type PaymentSummaryResponse struct {
	PagosPendientes int             `json:"pagos_pendientes"`
	PagosVencidos   int             `json:"pagos_vencidos"`
	TotalPendiente  decimal.Decimal `json:"total_pendiente"`
	TotalVencido    decimal.Decimal `json:"total_vencido"`
}
