package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/application/dto"
	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/credit"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// PaymentUseCase aplica pagos contra cuotas y lista el panel de pagos.
//
// Un pago se registra en sitio sobre la cuota: la cuota queda pagada solo si
// el monto cubre el total; un pago parcial la deja pendiente y puede volver a
// pagarse (el registro anterior se sobreescribe, no hay libro de pagos).
// El sobrepago se acepta sin validación: contrato documentado del sistema.
type PaymentUseCase struct {
	instRepo   repository.InstallmentRepository
	reportRepo repository.ReportingRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(instRepo repository.InstallmentRepository, reportRepo repository.ReportingRepository) *PaymentUseCase {
	return &PaymentUseCase{instRepo: instRepo, reportRepo: reportRepo}
}

// RecordPayment aplica un pago a la cuota indicada y devuelve la cuota
// actualizada. El monto debe ser positivo.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, installmentID string, in dto.RecordPaymentRequest) (*dto.InstallmentResponse, error) {
	if installmentID == "" || !in.MontoPagado.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	inst, err := uc.instRepo.GetByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}
	if inst == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	inst.PaidDate = &now
	inst.AmountPaid = decimal.NewNullDecimal(in.MontoPagado)
	if in.MontoPagado.GreaterThanOrEqual(inst.AmountDue) {
		inst.Status = entity.InstallmentStatusPaid
	} else {
		inst.Status = entity.InstallmentStatusPending
	}

	if err := uc.instRepo.RecordPayment(ctx, inst); err != nil {
		return nil, err
	}
	resp := toInstallmentResponse(inst, now)
	return &resp, nil
}

// List devuelve las cuotas con cliente y terreno, por vencimiento ascendente.
func (uc *PaymentUseCase) List(ctx context.Context, search string) ([]dto.PaymentListItem, error) {
	rows, err := uc.instRepo.List(ctx, search)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.PaymentListItem, 0, len(rows))
	for _, row := range rows {
		inst := row.Installment
		out = append(out, dto.PaymentListItem{
			InstallmentResponse: toInstallmentResponse(&inst, now),
			Cliente: dto.ClientSummary{
				Nombre:   row.ClientFirstName,
				Apellido: row.ClientLastName,
				Cedula:   row.ClientNationalID,
			},
			Terreno: dto.PlotSummary{
				NumeroLote: row.PlotLotNumber,
				Seccion:    row.PlotSection,
				Manzana:    row.PlotBlock,
			},
		})
	}
	return out, nil
}

// Summary devuelve las tarjetas del panel: cuotas pendientes y vencidas con
// sus montos (suma de monto_cuota sobre las no pagadas).
func (uc *PaymentUseCase) Summary(ctx context.Context) (*dto.PaymentSummaryResponse, error) {
	s, err := uc.reportRepo.PaymentSummary(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.PaymentSummaryResponse{
		PagosPendientes: s.PendingCount,
		PagosVencidos:   s.OverdueCount,
		TotalPendiente:  s.PendingAmount,
		TotalVencido:    s.OverdueAmount,
	}, nil
}

func toInstallmentResponse(inst *entity.Installment, now time.Time) dto.InstallmentResponse {
	resp := dto.InstallmentResponse{
		ID:               inst.ID,
		VentaID:          inst.SaleID,
		NumeroCuota:      inst.Number,
		MontoCuota:       inst.AmountDue,
		FechaVencimiento: inst.DueDate,
		Estado:           string(inst.Status),
		EstadoVisual:     string(credit.Classify(inst.Status, inst.DueDate, now)),
		FechaPago:        inst.PaidDate,
	}
	if inst.AmountPaid.Valid {
		v := inst.AmountPaid.Decimal
		resp.MontoPagado = &v
	}
	if inst.AppliedInterest.Valid {
		v := inst.AppliedInterest.Decimal
		resp.InteresAplicado = &v
	}
	return resp
}
