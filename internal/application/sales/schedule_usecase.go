package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/credit"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// ScheduleUseCase genera el plan de cuotas de una venta a crédito.
//
// La generación es única por venta: la transacción bloquea la fila de la
// venta, verifica que no existan cuotas y escribe las N cuotas junto con la
// configuración de crédito. El constraint UNIQUE (venta_id, numero_cuota)
// respalda la guarda ante dos generaciones concurrentes.
type ScheduleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	instRepo repository.InstallmentRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, instRepo repository.InstallmentRepository) *ScheduleUseCase {
	return &ScheduleUseCase{txRunner: txRunner, saleRepo: saleRepo, instRepo: instRepo}
}

// Generate crea el plan de cuotas. Rechaza con ErrInvalidInput antes de tocar
// la base si los parámetros están fuera de rango; con ErrSaleNotCredit si la
// venta es al contado; con ErrScheduleExists si ya hay plan generado.
func (uc *ScheduleUseCase) Generate(ctx context.Context, saleID string, in dto.SetupCreditRequest) (*dto.ScheduleResponse, error) {
	if saleID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.NumCuotas < credit.MinInstallments || in.NumCuotas > credit.MaxInstallments {
		return nil, domain.ErrInvalidInput
	}
	if in.TasaInteres.IsNegative() || in.TasaInteres.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	var installments []*entity.Installment
	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		_ repository.PlotRepository,
		instRepo repository.InstallmentRepository,
	) error {
		sale, err := saleRepo.GetByIDForUpdate(ctx, saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		if sale.PaymentType != entity.PaymentTypeCredit {
			return domain.ErrSaleNotCredit
		}
		if sale.Status != entity.SaleStatusActive {
			return domain.ErrSaleNotActive
		}
		existing, err := instRepo.CountBySale(ctx, saleID)
		if err != nil {
			return err
		}
		if existing > 0 {
			return domain.ErrScheduleExists
		}

		lines, err := credit.GenerateSchedule(sale.TotalPrice, in.NumCuotas, in.TasaInteres, sale.SaleDate)
		if err != nil {
			return err
		}
		installments = make([]*entity.Installment, 0, len(lines))
		for _, l := range lines {
			installments = append(installments, &entity.Installment{
				ID:              uuid.New().String(),
				SaleID:          saleID,
				Number:          l.Number,
				AmountDue:       l.AmountDue,
				DueDate:         l.DueDate,
				Status:          entity.InstallmentStatusPending,
				AppliedInterest: decimal.NewNullDecimal(l.Interest),
			})
		}
		if err := instRepo.CreateBatch(ctx, installments); err != nil {
			return err
		}
		return saleRepo.SetCreditTerms(ctx, saleID, in.NumCuotas, in.TasaInteres)
	})
	if err != nil {
		return nil, err
	}

	return uc.toScheduleResponse(saleID, in, installments), nil
}

// GetSchedule devuelve el plan de cuotas de una venta a crédito.
func (uc *ScheduleUseCase) GetSchedule(ctx context.Context, saleID string) (*dto.ScheduleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.PaymentType != entity.PaymentTypeCredit {
		return nil, domain.ErrSaleNotCredit
	}
	installments, err := uc.instRepo.ListBySale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if len(installments) == 0 {
		return nil, domain.ErrNotFound
	}

	in := dto.SetupCreditRequest{NumCuotas: len(installments)}
	if sale.NumInstallments != nil {
		in.NumCuotas = *sale.NumInstallments
	}
	if sale.InterestRate != nil {
		in.TasaInteres = *sale.InterestRate
	}
	return uc.toScheduleResponse(saleID, in, installments), nil
}

func (uc *ScheduleUseCase) toScheduleResponse(saleID string, in dto.SetupCreditRequest, installments []*entity.Installment) *dto.ScheduleResponse {
	now := time.Now()
	resp := &dto.ScheduleResponse{
		VentaID:     saleID,
		NumCuotas:   in.NumCuotas,
		TasaInteres: in.TasaInteres,
		Cuotas:      make([]dto.InstallmentResponse, 0, len(installments)),
	}
	for _, inst := range installments {
		resp.TotalAPagar = resp.TotalAPagar.Add(inst.AmountDue)
		if inst.AppliedInterest.Valid {
			resp.InteresTotal = resp.InteresTotal.Add(inst.AppliedInterest.Decimal)
		}
		resp.Cuotas = append(resp.Cuotas, toInstallmentResponse(inst, now))
	}
	return resp
}
