// Package credit contiene la lógica pura del subsistema de crédito: el cálculo
// del plan de amortización y la clasificación de cuotas para reportes.
//
// Método de amortización: sistema francés (cuota total constante con interés
// sobre saldo decreciente). La tasa anual en porcentaje se convierte a tasa
// mensual (anual/100/12). La cuota se redondea al centavo y la última cuota
// absorbe el residuo de redondeo, de modo que el capital amortizado suma
// exactamente el principal y monto_total = principal + intereses al centavo.
package credit

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/domain"
)

// Límites de negocio del plan de cuotas.
const (
	MinInstallments = 1
	MaxInstallments = 60
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// Line es una cuota calculada del plan, antes de persistir.
type Line struct {
	Number    int
	DueDate   time.Time
	AmountDue decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
}

// GenerateSchedule calcula el plan de cuotas de una venta a crédito.
//
// principal es el precio total de la venta, annualRatePct la tasa anual en
// porcentaje (0-100). Los vencimientos son mensuales consecutivos: la cuota k
// vence k meses después de la fecha de venta, estrictamente crecientes.
func GenerateSchedule(principal decimal.Decimal, numInstallments int, annualRatePct decimal.Decimal, saleDate time.Time) ([]Line, error) {
	if numInstallments < MinInstallments || numInstallments > MaxInstallments {
		return nil, fmt.Errorf("%w: número de cuotas %d fuera de [%d, %d]",
			domain.ErrInvalidInput, numInstallments, MinInstallments, MaxInstallments)
	}
	if !principal.IsPositive() {
		return nil, fmt.Errorf("%w: el principal debe ser positivo", domain.ErrInvalidInput)
	}
	if annualRatePct.IsNegative() || annualRatePct.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: tasa de interés anual %s fuera de [0, 100]",
			domain.ErrInvalidInput, annualRatePct)
	}

	n := int64(numInstallments)
	monthlyRate := annualRatePct.Div(hundred).Div(twelve)

	if monthlyRate.IsZero() {
		return zeroRateSchedule(principal, numInstallments, saleDate), nil
	}

	// Cuota constante: P * i * (1+i)^n / ((1+i)^n - 1), redondeada al centavo.
	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(n))
	payment := principal.Mul(monthlyRate).Mul(factor).DivRound(factor.Sub(one), 2)

	lines := make([]Line, 0, numInstallments)
	balance := principal
	for k := 1; k <= numInstallments; k++ {
		interest := balance.Mul(monthlyRate).Round(2)
		var principalPart, amount decimal.Decimal
		if k < numInstallments {
			principalPart = payment.Sub(interest)
			amount = payment
			balance = balance.Sub(principalPart)
		} else {
			// La última cuota liquida el saldo exacto y absorbe el redondeo.
			principalPart = balance
			amount = principalPart.Add(interest)
			balance = decimal.Zero
		}
		lines = append(lines, Line{
			Number:    k,
			DueDate:   saleDate.AddDate(0, k, 0),
			AmountDue: amount,
			Interest:  interest,
			Principal: principalPart,
		})
	}
	return lines, nil
}

// zeroRateSchedule reparte el principal en partes iguales al centavo;
// la última cuota absorbe la diferencia de redondeo.
func zeroRateSchedule(principal decimal.Decimal, numInstallments int, saleDate time.Time) []Line {
	base := principal.DivRound(decimal.NewFromInt(int64(numInstallments)), 2)
	lines := make([]Line, 0, numInstallments)
	accumulated := decimal.Zero
	for k := 1; k <= numInstallments; k++ {
		amount := base
		if k == numInstallments {
			amount = principal.Sub(accumulated)
		}
		accumulated = accumulated.Add(amount)
		lines = append(lines, Line{
			Number:    k,
			DueDate:   saleDate.AddDate(0, k, 0),
			AmountDue: amount,
			Interest:  decimal.Zero,
			Principal: amount,
		})
	}
	return lines
}

// Totals devuelve el total a pagar y el interés total del plan.
func Totals(lines []Line) (total, interest decimal.Decimal) {
	for _, l := range lines {
		total = total.Add(l.AmountDue)
		interest = interest.Add(l.Interest)
	}
	return total, interest
}
