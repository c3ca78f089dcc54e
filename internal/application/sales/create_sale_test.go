package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/application/sales"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

type createSaleFixture struct {
	uc         *sales.CreateSaleUseCase
	clientRepo *fakeClientRepo
	plotRepo   *fakePlotRepo
	saleRepo   *fakeSaleRepo
	instRepo   *fakeInstallmentRepo
}

func newCreateSaleFixture() createSaleFixture {
	clientRepo := newFakeClientRepo()
	plotRepo := newFakePlotRepo()
	saleRepo := newFakeSaleRepo()
	instRepo := newFakeInstallmentRepo()
	runner := &fakeTxRunner{saleRepo: saleRepo, plotRepo: plotRepo, instRepo: instRepo}
	return createSaleFixture{
		uc:         sales.NewCreateSaleUseCase(runner, clientRepo, saleRepo),
		clientRepo: clientRepo,
		plotRepo:   plotRepo,
		saleRepo:   saleRepo,
		instRepo:   instRepo,
	}
}

func TestCreateSale_MarcaTerrenoVendido(t *testing.T) {
	fx := newCreateSaleFixture()
	seedClient(fx.clientRepo, "cliente-1")
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusAvailable)

	out, err := fx.uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ClienteID:   "cliente-1",
		TerrenoID:   "terreno-1",
		PrecioTotal: decimal.NewFromInt(85000),
		TipoPago:    "credito",
	})
	require.NoError(t, err)
	assert.Equal(t, "credito", out.TipoPago)
	assert.Equal(t, "activa", out.Estado)
	assert.Equal(t, "María", out.Cliente.Nombre)

	plot, err := fx.plotRepo.GetByID(context.Background(), "terreno-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PlotStatusSold, plot.Status,
		"crear la venta debe dejar el terreno vendido")
}

func TestCreateSale_TerrenoNoDisponible(t *testing.T) {
	fx := newCreateSaleFixture()
	seedClient(fx.clientRepo, "cliente-1")
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusSold)

	_, err := fx.uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ClienteID:   "cliente-1",
		TerrenoID:   "terreno-1",
		PrecioTotal: decimal.NewFromInt(85000),
		TipoPago:    "contado",
	})
	assert.ErrorIs(t, err, domain.ErrPlotNotAvailable)
	rows, err := fx.saleRepo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, rows, "no debe quedar venta escrita")
}

func TestCreateSale_ClienteInactivo(t *testing.T) {
	fx := newCreateSaleFixture()
	c := seedClient(fx.clientRepo, "cliente-1")
	c.Active = false
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusAvailable)

	_, err := fx.uc.CreateSale(context.Background(), dto.CreateSaleRequest{
		ClienteID:   "cliente-1",
		TerrenoID:   "terreno-1",
		PrecioTotal: decimal.NewFromInt(85000),
		TipoPago:    "contado",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_Validaciones(t *testing.T) {
	fx := newCreateSaleFixture()
	seedClient(fx.clientRepo, "cliente-1")
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusAvailable)

	cases := []struct {
		name string
		in   dto.CreateSaleRequest
	}{
		{"sin cliente", dto.CreateSaleRequest{TerrenoID: "terreno-1", PrecioTotal: decimal.NewFromInt(10), TipoPago: "contado"}},
		{"sin terreno", dto.CreateSaleRequest{ClienteID: "cliente-1", PrecioTotal: decimal.NewFromInt(10), TipoPago: "contado"}},
		{"precio cero", dto.CreateSaleRequest{ClienteID: "cliente-1", TerrenoID: "terreno-1", TipoPago: "contado"}},
		{"tipo de pago desconocido", dto.CreateSaleRequest{ClienteID: "cliente-1", TerrenoID: "terreno-1", PrecioTotal: decimal.NewFromInt(10), TipoPago: "cheque"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.uc.CreateSale(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCancelSale_LiberaElTerreno(t *testing.T) {
	fx := newCreateSaleFixture()
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusSold)
	seedSale(fx.saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	err := fx.uc.CancelSale(context.Background(), "venta-1")
	require.NoError(t, err)

	sale, err := fx.saleRepo.GetByID(context.Background(), "venta-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCancelled, sale.Status)

	plot, err := fx.plotRepo.GetByID(context.Background(), "terreno-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PlotStatusAvailable, plot.Status,
		"cancelar debe devolver el terreno a disponible")
}

func TestCancelSale_RechazaConCuotasPagadas(t *testing.T) {
	fx := newCreateSaleFixture()
	seedPlot(fx.plotRepo, "terreno-1", entity.PlotStatusSold)
	seedSale(fx.saleRepo, "venta-1", entity.PaymentTypeCredit, entity.SaleStatusActive)

	now := time.Now()
	fx.instRepo.installments["cuota-1"] = &entity.Installment{
		ID:        "cuota-1",
		SaleID:    "venta-1",
		Number:    1,
		AmountDue: decimal.NewFromInt(1000),
		DueDate:   now,
		Status:    entity.InstallmentStatusPaid,
	}

	err := fx.uc.CancelSale(context.Background(), "venta-1")
	assert.ErrorIs(t, err, domain.ErrHasPaidInstallments)

	sale, err := fx.saleRepo.GetByID(context.Background(), "venta-1")
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusActive, sale.Status, "la venta sigue activa")
}

func TestCancelSale_YaCancelada(t *testing.T) {
	fx := newCreateSaleFixture()
	seedSale(fx.saleRepo, "venta-1", entity.PaymentTypeCash, entity.SaleStatusCancelled)

	err := fx.uc.CancelSale(context.Background(), "venta-1")
	assert.ErrorIs(t, err, domain.ErrSaleNotActive)
}
