// Package analytics contiene el caso de uso del dashboard: conteos generales
// e ingresos del mes en curso.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
	"github.com/montesagrado/camposanto-api/pkg/money"
)

// DashboardUseCase arma el resumen general del sistema.
//
// Ingresos del mes: ventas al contado del mes por su precio completo
// (devengado) más los pagos de cuotas cobrados en el mes (base caja), sin
// importar el mes de la venta madre. La mezcla es una simplificación de
// reporte deliberada, no contabilidad de partida doble.
type DashboardUseCase struct {
	reportRepo repository.ReportingRepository
	formatter  *money.Formatter
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportingRepository, formatter *money.Formatter) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, formatter: formatter}
}

// GetStats construye el DashboardStatsDTO del mes en curso.
//
// Tres consultas en paralelo:
//  1. conteos globales (clientes activos, terrenos disponibles, total ventas)
//  2. ingresos del mes (contado + crédito cobrado)
//  3. ventas del mes (todas las no canceladas, sin importar tipo de pago)
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	monthStart, monthEnd := monthRange(now)

	type countsResult struct {
		clients, plots, sales int
		err                   error
	}
	type revenueResult struct {
		cash, creditCollected decimal.Decimal
		err                   error
	}
	type monthSalesResult struct {
		count int
		err   error
	}

	countsCh := make(chan countsResult, 1)
	revenueCh := make(chan revenueResult, 1)
	monthCh := make(chan monthSalesResult, 1)

	go func() {
		var r countsResult
		r.clients, r.err = uc.reportRepo.CountActiveClients(ctx)
		if r.err == nil {
			r.plots, r.err = uc.reportRepo.CountAvailablePlots(ctx)
		}
		if r.err == nil {
			r.sales, r.err = uc.reportRepo.CountSales(ctx)
		}
		countsCh <- r
	}()
	go func() {
		var r revenueResult
		r.cash, r.err = uc.reportRepo.CashRevenueBetween(ctx, monthStart, monthEnd)
		if r.err == nil {
			r.creditCollected, r.err = uc.reportRepo.CreditRevenueBetween(ctx, monthStart, monthEnd)
		}
		revenueCh <- r
	}()
	go func() {
		var r monthSalesResult
		r.count, r.err = uc.reportRepo.CountSalesBetween(ctx, monthStart, monthEnd)
		monthCh <- r
	}()

	counts := <-countsCh
	revenue := <-revenueCh
	monthSales := <-monthCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: conteos: %w", counts.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos del mes: %w", revenue.err)
	}
	if monthSales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", monthSales.err)
	}

	monthlyRevenue := revenue.cash.Add(revenue.creditCollected).Round(2)
	return &dto.DashboardStatsDTO{
		ClientesActivos:     counts.clients,
		TerrenosDisponibles: counts.plots,
		TotalVentas:         counts.sales,
		VentasEsteMes:       monthSales.count,
		IngresosMensuales:   monthlyRevenue,
		IngresosFormateados: uc.formatter.Format(monthlyRevenue),
		Mes:                 monthLabel(now),
	}, nil
}

// monthRange devuelve el intervalo semiabierto [primer día del mes, primer
// día del mes siguiente) en la zona horaria del servidor.
func monthRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
