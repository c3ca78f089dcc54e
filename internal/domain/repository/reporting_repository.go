package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentSummary agregados de cuotas no pagadas para el panel de pagos.
// El subconjunto vencido filtra además por vencimiento anterior a ahora.
type PaymentSummary struct {
	PendingCount  int
	OverdueCount  int
	PendingAmount decimal.Decimal
	OverdueAmount decimal.Decimal
}

// ReportingRepository consultas de solo lectura para el dashboard.
// Los rangos de fechas son intervalos semiabiertos [from, to).
type ReportingRepository interface {
	CountActiveClients(ctx context.Context) (int, error)
	CountAvailablePlots(ctx context.Context) (int, error)
	// CountSales cuenta todas las ventas no canceladas.
	CountSales(ctx context.Context) (int, error)
	// CountSalesBetween cuenta ventas no canceladas con fecha_venta en [from, to),
	// sin importar el tipo de pago.
	CountSalesBetween(ctx context.Context, from, to time.Time) (int, error)
	// CashRevenueBetween suma precio_total de ventas al contado no canceladas
	// con fecha_venta en [from, to) (devengado en la fecha de venta).
	CashRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	// CreditRevenueBetween suma monto_pagado de cuotas con fecha_pago en
	// [from, to), sin importar el mes de la venta madre (base caja).
	CreditRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	PaymentSummary(ctx context.Context, now time.Time) (*PaymentSummary, error)
}
