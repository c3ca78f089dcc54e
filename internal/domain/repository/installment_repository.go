package repository

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// InstallmentWithRefs cuota con los datos de la venta, cliente y terreno
// para el listado de pagos.
type InstallmentWithRefs struct {
	entity.Installment
	ClientFirstName  string
	ClientLastName   string
	ClientNationalID string
	PlotLotNumber    string
	PlotSection      string
	PlotBlock        string
}

// InstallmentRepository acceso a cuotas de crédito.
type InstallmentRepository interface {
	// CreateBatch inserta todas las cuotas del plan; se invoca dentro de la
	// transacción de generación (todo o nada).
	CreateBatch(ctx context.Context, installments []*entity.Installment) error
	GetByID(ctx context.Context, id string) (*entity.Installment, error)
	ListBySale(ctx context.Context, saleID string) ([]*entity.Installment, error)
	// List devuelve cuotas con venta/cliente/terreno ordenadas por vencimiento
	// ascendente; search filtra por cliente, cédula, lote o número de cuota.
	List(ctx context.Context, search string) ([]InstallmentWithRefs, error)
	CountBySale(ctx context.Context, saleID string) (int, error)
	CountPaidBySale(ctx context.Context, saleID string) (int, error)
	// RecordPayment persiste fecha_pago, monto_pagado y estado de la cuota.
	RecordPayment(ctx context.Context, installment *entity.Installment) error
}
