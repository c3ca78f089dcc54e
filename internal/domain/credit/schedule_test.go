package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/credit"
)

var saleDate = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateSchedule_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name      string
		principal decimal.Decimal
		num       int
		rate      decimal.Decimal
	}{
		{"cero cuotas", dec("1000"), 0, dec("10")},
		{"cuotas negativas", dec("1000"), -3, dec("10")},
		{"más de 60 cuotas", dec("1000"), 61, dec("10")},
		{"principal cero", dec("0"), 12, dec("10")},
		{"principal negativo", dec("-500"), 12, dec("10")},
		{"tasa negativa", dec("1000"), 12, dec("-1")},
		{"tasa mayor a 100", dec("1000"), 12, dec("100.01")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := credit.GenerateSchedule(tc.principal, tc.num, tc.rate, saleDate)
			assert.Nil(t, lines)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estructura del plan
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateSchedule_NumeracionYVencimientos(t *testing.T) {
	lines, err := credit.GenerateSchedule(dec("120000"), 12, dec("12"), saleDate)
	require.NoError(t, err)
	require.Len(t, lines, 12)

	for i, l := range lines {
		assert.Equal(t, i+1, l.Number, "las cuotas se numeran 1..N sin huecos")
		assert.Equal(t, saleDate.AddDate(0, i+1, 0), l.DueDate,
			"la cuota k vence k meses después de la venta")
		if i > 0 {
			assert.True(t, l.DueDate.After(lines[i-1].DueDate),
				"los vencimientos deben ser estrictamente crecientes")
		}
	}
	assert.Equal(t, saleDate.AddDate(0, 1, 0), lines[0].DueDate,
		"la primera cuota vence un mes después de la venta")
}

func TestGenerateSchedule_CapitalSumaExactoElPrincipal(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		num       int
		rate      string
	}{
		{"12 cuotas al 12%", "120000", 12, "12"},
		{"monto que no divide parejo", "100000", 7, "18"},
		{"una sola cuota", "50000", 1, "24"},
		{"60 cuotas al 36%", "345678.91", 60, "36"},
		{"sin interés", "99999.99", 13, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			principal := dec(tc.principal)
			lines, err := credit.GenerateSchedule(principal, tc.num, dec(tc.rate), saleDate)
			require.NoError(t, err)
			require.Len(t, lines, tc.num)

			sumPrincipal := decimal.Zero
			for _, l := range lines {
				sumPrincipal = sumPrincipal.Add(l.Principal)
				assert.True(t, l.AmountDue.Equal(l.Principal.Add(l.Interest)),
					"cuota %d: monto = capital + interés", l.Number)
				assert.True(t, l.AmountDue.Exponent() >= -2,
					"cuota %d: el monto no debe tener más de dos decimales", l.Number)
			}
			assert.True(t, sumPrincipal.Equal(principal),
				"el capital amortizado debe sumar exactamente el principal: %s vs %s",
				sumPrincipal, principal)

			total, interest := credit.Totals(lines)
			assert.True(t, total.Equal(principal.Add(interest)),
				"total a pagar = principal + interés total")
		})
	}
}

func TestGenerateSchedule_CuotaConstanteSalvoLaUltima(t *testing.T) {
	lines, err := credit.GenerateSchedule(dec("100000"), 24, dec("18"), saleDate)
	require.NoError(t, err)

	payment := lines[0].AmountDue
	for _, l := range lines[:len(lines)-1] {
		assert.True(t, l.AmountDue.Equal(payment),
			"cuota %d: las cuotas 1..N-1 son iguales", l.Number)
	}
	// La última solo difiere por el residuo de redondeo: menos de un peso.
	diff := lines[len(lines)-1].AmountDue.Sub(payment).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromInt(1)),
		"la última cuota solo absorbe centavos de redondeo, difiere %s", diff)
}

func TestGenerateSchedule_InteresSobreSaldoDecreciente(t *testing.T) {
	// 120000 al 12% anual = 1% mensual: el interés de la primera cuota es
	// exactamente el 1% del principal.
	lines, err := credit.GenerateSchedule(dec("120000"), 12, dec("12"), saleDate)
	require.NoError(t, err)

	assert.True(t, lines[0].Interest.Equal(dec("1200.00")),
		"interés de la cuota 1 = principal * tasa mensual, fue %s", lines[0].Interest)

	for i := 1; i < len(lines); i++ {
		assert.True(t, lines[i].Interest.LessThan(lines[i-1].Interest),
			"el interés decrece con el saldo: cuota %d", i+1)
	}
}

func TestGenerateSchedule_TasaCero_ParteIguales(t *testing.T) {
	lines, err := credit.GenerateSchedule(dec("1000"), 3, dec("0"), saleDate)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.True(t, lines[0].AmountDue.Equal(dec("333.33")))
	assert.True(t, lines[1].AmountDue.Equal(dec("333.33")))
	assert.True(t, lines[2].AmountDue.Equal(dec("333.34")),
		"la última cuota absorbe la diferencia de redondeo")
	for _, l := range lines {
		assert.True(t, l.Interest.IsZero(), "sin tasa no hay interés")
	}
}

func TestGenerateSchedule_UnaCuotaLiquidaTodo(t *testing.T) {
	lines, err := credit.GenerateSchedule(dec("5000"), 1, dec("12"), saleDate)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// Una cuota al 1% mensual: 5000 de capital + 50 de interés.
	assert.True(t, lines[0].Principal.Equal(dec("5000")))
	assert.True(t, lines[0].Interest.Equal(dec("50.00")))
	assert.True(t, lines[0].AmountDue.Equal(dec("5050.00")))
}
