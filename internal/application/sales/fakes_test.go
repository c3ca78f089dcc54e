package sales_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. El txRunner fake pasa los
// mismos repos al callback: los tests verifican las guardas de negocio, no el
// protocolo de transacciones.

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) GetByNationalID(_ context.Context, nationalID string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.NationalID == nationalID && c.Active {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) ListActive(_ context.Context, _ string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.Active {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	if _, ok := f.clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) Deactivate(_ context.Context, id string) error {
	c, ok := f.clients[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = false
	return nil
}

type fakePlotRepo struct {
	plots map[string]*entity.Plot
}

func newFakePlotRepo() *fakePlotRepo {
	return &fakePlotRepo{plots: map[string]*entity.Plot{}}
}

func (f *fakePlotRepo) Create(_ context.Context, p *entity.Plot) error {
	f.plots[p.ID] = p
	return nil
}

func (f *fakePlotRepo) GetByID(_ context.Context, id string) (*entity.Plot, error) {
	p, ok := f.plots[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlotRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Plot, error) {
	return f.GetByID(ctx, id)
}

func (f *fakePlotRepo) List(_ context.Context, status entity.PlotStatus) ([]*entity.Plot, error) {
	var out []*entity.Plot
	for _, p := range f.plots {
		if status == "" || p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePlotRepo) Update(_ context.Context, p *entity.Plot) error {
	if _, ok := f.plots[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.plots[p.ID] = &cp
	return nil
}

func (f *fakePlotRepo) UpdateStatus(_ context.Context, id string, status entity.PlotStatus) error {
	p, ok := f.plots[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	return nil
}

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (f *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	f.sales[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSaleRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSaleRepo) GetWithRefs(ctx context.Context, id string) (*repository.SaleWithRefs, error) {
	s, err := f.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	return &repository.SaleWithRefs{Sale: *s}, nil
}

func (f *fakeSaleRepo) List(_ context.Context, _ string) ([]repository.SaleWithRefs, error) {
	var out []repository.SaleWithRefs
	for _, s := range f.sales {
		out = append(out, repository.SaleWithRefs{Sale: *s})
	}
	return out, nil
}

func (f *fakeSaleRepo) SetCreditTerms(_ context.Context, saleID string, numInstallments int, annualRatePct decimal.Decimal) error {
	s, ok := f.sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	s.NumInstallments = &numInstallments
	s.InterestRate = &annualRatePct
	return nil
}

func (f *fakeSaleRepo) UpdateStatus(_ context.Context, id string, status entity.SaleStatus) error {
	s, ok := f.sales[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Status = status
	return nil
}

type fakeInstallmentRepo struct {
	installments map[string]*entity.Installment
}

func newFakeInstallmentRepo() *fakeInstallmentRepo {
	return &fakeInstallmentRepo{installments: map[string]*entity.Installment{}}
}

func (f *fakeInstallmentRepo) CreateBatch(_ context.Context, batch []*entity.Installment) error {
	for _, inst := range batch {
		for _, existing := range f.installments {
			if existing.SaleID == inst.SaleID && existing.Number == inst.Number {
				return domain.ErrScheduleExists
			}
		}
	}
	for _, inst := range batch {
		cp := *inst
		f.installments[inst.ID] = &cp
	}
	return nil
}

func (f *fakeInstallmentRepo) GetByID(_ context.Context, id string) (*entity.Installment, error) {
	inst, ok := f.installments[id]
	if !ok {
		return nil, nil
	}
	cp := *inst
	return &cp, nil
}

func (f *fakeInstallmentRepo) ListBySale(_ context.Context, saleID string) ([]*entity.Installment, error) {
	out := make([]*entity.Installment, 0)
	for n := 1; ; n++ {
		found := false
		for _, inst := range f.installments {
			if inst.SaleID == saleID && inst.Number == n {
				cp := *inst
				out = append(out, &cp)
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return out, nil
}

func (f *fakeInstallmentRepo) List(_ context.Context, _ string) ([]repository.InstallmentWithRefs, error) {
	var out []repository.InstallmentWithRefs
	for _, inst := range f.installments {
		out = append(out, repository.InstallmentWithRefs{Installment: *inst})
	}
	return out, nil
}

func (f *fakeInstallmentRepo) CountBySale(_ context.Context, saleID string) (int, error) {
	count := 0
	for _, inst := range f.installments {
		if inst.SaleID == saleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeInstallmentRepo) CountPaidBySale(_ context.Context, saleID string) (int, error) {
	count := 0
	for _, inst := range f.installments {
		if inst.SaleID == saleID && inst.Status == entity.InstallmentStatusPaid {
			count++
		}
	}
	return count, nil
}

func (f *fakeInstallmentRepo) RecordPayment(_ context.Context, inst *entity.Installment) error {
	if _, ok := f.installments[inst.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inst
	f.installments[inst.ID] = &cp
	return nil
}

type fakeReportingRepo struct {
	summary repository.PaymentSummary
}

func (f *fakeReportingRepo) CountActiveClients(context.Context) (int, error)   { return 0, nil }
func (f *fakeReportingRepo) CountAvailablePlots(context.Context) (int, error)  { return 0, nil }
func (f *fakeReportingRepo) CountSales(context.Context) (int, error)           { return 0, nil }
func (f *fakeReportingRepo) CountSalesBetween(context.Context, time.Time, time.Time) (int, error) {
	return 0, nil
}
func (f *fakeReportingRepo) CashRevenueBetween(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeReportingRepo) CreditRevenueBetween(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (f *fakeReportingRepo) PaymentSummary(context.Context, time.Time) (*repository.PaymentSummary, error) {
	s := f.summary
	return &s, nil
}

// fakeTxRunner entrega los repos compartidos al callback.
type fakeTxRunner struct {
	saleRepo *fakeSaleRepo
	plotRepo *fakePlotRepo
	instRepo *fakeInstallmentRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	plotRepo repository.PlotRepository,
	instRepo repository.InstallmentRepository,
) error) error {
	return fn(f.saleRepo, f.plotRepo, f.instRepo)
}

// Datos base compartidos por los tests.

func seedClient(repo *fakeClientRepo, id string) *entity.Client {
	c := &entity.Client{
		ID:           id,
		FirstName:    "María",
		LastName:     "Pérez",
		NationalID:   fmt.Sprintf("001-%s", id),
		RegisteredAt: time.Now(),
		Active:       true,
	}
	repo.clients[id] = c
	return c
}

func seedPlot(repo *fakePlotRepo, id string, status entity.PlotStatus) *entity.Plot {
	p := &entity.Plot{
		ID:        id,
		LotNumber: "L-" + id,
		Section:   "A",
		Block:     "1",
		Price:     decimal.NewFromInt(120000),
		Type:      entity.PlotTypeNiche,
		Status:    status,
	}
	repo.plots[id] = p
	return p
}

func seedSale(repo *fakeSaleRepo, id string, paymentType entity.PaymentType, status entity.SaleStatus) *entity.Sale {
	s := &entity.Sale{
		ID:          id,
		ClientID:    "cliente-1",
		PlotID:      "terreno-1",
		TotalPrice:  decimal.NewFromInt(120000),
		PaymentType: paymentType,
		SaleDate:    time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:      status,
		CreatedAt:   time.Now(),
	}
	repo.sales[id] = s
	return s
}
