package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

var _ repository.ReportingRepository = (*ReportingRepo)(nil)

// ReportingRepo consultas de solo lectura para el dashboard sobre PostgreSQL.
type ReportingRepo struct {
	q Querier
}

// NewReportingRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportingRepository(q Querier) *ReportingRepo {
	return &ReportingRepo{q: q}
}

// CountActiveClients cuenta los clientes activos.
func (r *ReportingRepo) CountActiveClients(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes WHERE activo = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count clientes activos: %w", err)
	}
	return count, nil
}

// CountAvailablePlots cuenta los terrenos disponibles.
func (r *ReportingRepo) CountAvailablePlots(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM terrenos WHERE estado = 'disponible'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count terrenos disponibles: %w", err)
	}
	return count, nil
}

// CountSales cuenta todas las ventas no canceladas.
func (r *ReportingRepo) CountSales(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ventas WHERE estado <> 'cancelada'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ventas: %w", err)
	}
	return count, nil
}

// CountSalesBetween cuenta ventas no canceladas con fecha_venta en [from, to).
func (r *ReportingRepo) CountSalesBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM ventas WHERE estado <> 'cancelada' AND fecha_venta >= $1 AND fecha_venta < $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ventas periodo: %w", err)
	}
	return count, nil
}

// CashRevenueBetween suma precio_total de ventas al contado no canceladas
// con fecha_venta en [from, to).
func (r *ReportingRepo) CashRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(precio_total), 0)
		FROM ventas
		WHERE tipo_pago = 'contado' AND estado <> 'cancelada'
		  AND fecha_venta >= $1 AND fecha_venta < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ingresos contado: %w", err)
	}
	return total, nil
}

// CreditRevenueBetween suma monto_pagado de cuotas cobradas en [from, to),
// sin importar el mes de la venta madre.
func (r *ReportingRepo) CreditRevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.monto_pagado), 0)
		FROM pagos_credito p
		JOIN ventas v ON v.id = p.venta_id
		WHERE v.estado <> 'cancelada'
		  AND p.fecha_pago IS NOT NULL AND p.fecha_pago >= $1 AND p.fecha_pago < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ingresos credito: %w", err)
	}
	return total, nil
}

// PaymentSummary agrega cuotas no pagadas de ventas activas; el subconjunto
// vencido filtra por fecha_vencimiento anterior a now.
func (r *ReportingRepo) PaymentSummary(ctx context.Context, now time.Time) (*repository.PaymentSummary, error) {
	var s repository.PaymentSummary
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE p.fecha_vencimiento < $1),
		       COALESCE(SUM(p.monto_cuota), 0),
		       COALESCE(SUM(p.monto_cuota) FILTER (WHERE p.fecha_vencimiento < $1), 0)
		FROM pagos_credito p
		JOIN ventas v ON v.id = p.venta_id
		WHERE p.estado <> 'pagado' AND v.estado = 'activa'`,
		now,
	).Scan(&s.PendingCount, &s.OverdueCount, &s.PendingAmount, &s.OverdueAmount)
	if err != nil {
		return nil, fmt.Errorf("resumen pagos: %w", err)
	}
	return &s, nil
}
