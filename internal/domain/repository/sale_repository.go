package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// SaleWithRefs venta con los datos del cliente y del terreno para listados.
type SaleWithRefs struct {
	entity.Sale
	ClientFirstName  string
	ClientLastName   string
	ClientNationalID string
	PlotLotNumber    string
	PlotSection      string
	PlotBlock        string
}

// SaleRepository acceso a ventas.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// GetByIDForUpdate bloquea la fila de la venta dentro de la transacción en
	// curso; se usa como guarda transaccional al generar el plan de cuotas.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Sale, error)
	// GetWithRefs devuelve la venta con los datos de su cliente y terreno.
	GetWithRefs(ctx context.Context, id string) (*SaleWithRefs, error)
	// List devuelve ventas con cliente y terreno, más recientes primero;
	// search filtra por cliente (nombre, apellido, cédula) o número de lote.
	List(ctx context.Context, search string) ([]SaleWithRefs, error)
	// SetCreditTerms fija la configuración de crédito de la venta al generar
	// el plan (se persiste en la misma transacción que las cuotas).
	SetCreditTerms(ctx context.Context, saleID string, numInstallments int, annualRatePct decimal.Decimal) error
	UpdateStatus(ctx context.Context, id string, status entity.SaleStatus) error
}
