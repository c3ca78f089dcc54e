package sales

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

// PDFUseCase arma la representación impresa del plan de pagos de una venta.
type PDFUseCase struct {
	saleRepo  repository.SaleRepository
	instRepo  repository.InstallmentRepository
	generator SchedulePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(saleRepo repository.SaleRepository, instRepo repository.InstallmentRepository, generator SchedulePDFGenerator) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, instRepo: instRepo, generator: generator}
}

// GenerateSchedulePDF devuelve el PDF del plan de cuotas. Solo aplica a
// ventas a crédito con plan ya generado.
func (uc *PDFUseCase) GenerateSchedulePDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetWithRefs(ctx, saleID)
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
	return uc.generator.GenerateSchedulePDF(ctx, SchedulePDFData{
		Sale:         *sale,
		Installments: installments,
	})
}
