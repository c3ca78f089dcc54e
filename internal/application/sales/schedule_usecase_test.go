package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/application/sales"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

func newScheduleFixture() (*sales.ScheduleUseCase, *fakeSaleRepo, *fakeInstallmentRepo) {
	saleRepo := newFakeSaleRepo()
	instRepo := newFakeInstallmentRepo()
	runner := &fakeTxRunner{saleRepo: saleRepo, plotRepo: newFakePlotRepo(), instRepo: instRepo}
	return sales.NewScheduleUseCase(runner, saleRepo, instRepo), saleRepo, instRepo
}

func TestGenerate_CreaPlanCompleto(t *testing.T) {
	uc, saleRepo, instRepo := newScheduleFixture()
	sale := seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	out, err := uc.Generate(context.Background(), "venta-1", dto.SetupCreditRequest{
		NumCuotas:   12,
		TasaInteres: decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	require.Len(t, out.Cuotas, 12)

	assert.Equal(t, "venta-1", out.VentaID)
	assert.Equal(t, 12, out.NumCuotas)
	assert.True(t, out.TotalAPagar.Equal(sale.TotalPrice.Add(out.InteresTotal)),
		"total a pagar = principal + interés total")

	// Cuotas persistidas como pendientes, numeradas 1..N.
	persisted, err := instRepo.ListBySale(context.Background(), "venta-1")
	require.NoError(t, err)
	require.Len(t, persisted, 12)
	for i, inst := range persisted {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, entity.InstallmentStatusPending, inst.Status)
		assert.True(t, inst.AppliedInterest.Valid, "el interés de la cuota queda fijado al generar")
	}

	// La configuración de crédito queda escrita en la venta.
	updated, err := saleRepo.GetByID(context.Background(), "venta-1")
	require.NoError(t, err)
	require.NotNil(t, updated.NumInstallments)
	assert.Equal(t, 12, *updated.NumInstallments)
	require.NotNil(t, updated.InterestRate)
	assert.True(t, updated.InterestRate.Equal(decimal.NewFromInt(12)))
}

func TestGenerate_RechazaParametrosFueraDeRango(t *testing.T) {
	uc, saleRepo, instRepo := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	cases := []struct {
		name string
		in   dto.SetupCreditRequest
	}{
		{"cero cuotas", dto.SetupCreditRequest{NumCuotas: 0, TasaInteres: decimal.NewFromInt(10)}},
		{"61 cuotas", dto.SetupCreditRequest{NumCuotas: 61, TasaInteres: decimal.NewFromInt(10)}},
		{"tasa negativa", dto.SetupCreditRequest{NumCuotas: 12, TasaInteres: decimal.NewFromInt(-1)}},
		{"tasa mayor a 100", dto.SetupCreditRequest{NumCuotas: 12, TasaInteres: decimal.NewFromInt(101)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Generate(context.Background(), "venta-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Nada se escribió.
	count, err := instRepo.CountBySale(context.Background(), "venta-1")
	require.NoError(t, err)
	assert.Zero(t, count, "un rechazo de validación no debe dejar cuotas escritas")
}

func TestGenerate_RechazaVentaContado(t *testing.T) {
	uc, saleRepo, _ := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCash, entity.SaleStatusActive)

	_, err := uc.Generate(context.Background(), "venta-1", dto.SetupCreditRequest{
		NumCuotas:   12,
		TasaInteres: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrSaleNotCredit)
}

func TestGenerate_RechazaVentaCancelada(t *testing.T) {
	uc, saleRepo, _ := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusCancelled)

	_, err := uc.Generate(context.Background(), "venta-1", dto.SetupCreditRequest{
		NumCuotas:   12,
		TasaInteres: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrSaleNotActive)
}

func TestGenerate_VentaInexistente(t *testing.T) {
	uc, _, _ := newScheduleFixture()

	_, err := uc.Generate(context.Background(), "no-existe", dto.SetupCreditRequest{
		NumCuotas:   12,
		TasaInteres: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_SegundaGeneracionConflicto(t *testing.T) {
	uc, saleRepo, instRepo := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	in := dto.SetupCreditRequest{NumCuotas: 6, TasaInteres: decimal.NewFromInt(10)}
	_, err := uc.Generate(context.Background(), "venta-1", in)
	require.NoError(t, err)

	// La segunda generación, con otros parámetros incluso, se rechaza y el
	// plan original queda intacto.
	_, err = uc.Generate(context.Background(), "venta-1", dto.SetupCreditRequest{
		NumCuotas:   12,
		TasaInteres: decimal.NewFromInt(20),
	})
	assert.ErrorIs(t, err, domain.ErrScheduleExists)

	count, err := instRepo.CountBySale(context.Background(), "venta-1")
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestGetSchedule_DevuelvePlanExistente(t *testing.T) {
	uc, saleRepo, _ := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	in := dto.SetupCreditRequest{NumCuotas: 6, TasaInteres: decimal.NewFromInt(18)}
	generated, err := uc.Generate(context.Background(), "venta-1", in)
	require.NoError(t, err)

	got, err := uc.GetSchedule(context.Background(), "venta-1")
	require.NoError(t, err)
	assert.Equal(t, generated.NumCuotas, got.NumCuotas)
	assert.True(t, generated.TotalAPagar.Equal(got.TotalAPagar))
	assert.True(t, generated.TasaInteres.Equal(got.TasaInteres))
	require.Len(t, got.Cuotas, 6)
}

func TestGetSchedule_SinPlanGenerado(t *testing.T) {
	uc, saleRepo, _ := newScheduleFixture()
	seedSale(saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	_, err := uc.GetSchedule(context.Background(), "venta-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
