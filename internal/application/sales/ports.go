package sales

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con los repositorios de venta atados a una
// misma transacción. El commit/rollback es responsabilidad del runner: si fn
// devuelve error no se escribe nada (todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		plotRepo repository.PlotRepository,
		instRepo repository.InstallmentRepository,
	) error) error
}

// SchedulePDFData datos para la representación impresa del plan de pagos.
type SchedulePDFData struct {
	Sale         repository.SaleWithRefs
	Installments []*entity.Installment
}

// SchedulePDFGenerator genera el documento PDF del plan de cuotas.
type SchedulePDFGenerator interface {
	GenerateSchedulePDF(ctx context.Context, data SchedulePDFData) ([]byte, error)
}
