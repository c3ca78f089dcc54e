package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus estado de pago de una cuota. Solo existen dos estados
// persistidos; "vencida" es una clasificación derivada de la fecha, no un
// estado almacenado.
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pendiente"
	InstallmentStatusPaid    InstallmentStatus = "pagado"
)

// Installment es una cuota del plan de crédito de una venta.
// Number es contiguo 1..N sin huecos dentro de la venta; el plan se genera
// una sola vez por venta.
type Installment struct {
	ID        string
	SaleID    string
	Number    int // numero_cuota, 1..N único por venta
	AmountDue decimal.Decimal
	DueDate   time.Time
	Status    InstallmentStatus

	// Registro del último pago aplicado. Un pago parcial se guarda en sitio y
	// la cuota sigue pendiente; llamadas repetidas sobreescriben estos campos
	// (no hay libro de pagos parciales por cuota).
	PaidDate   *time.Time
	AmountPaid decimal.NullDecimal

	// Interés de la cuota según el método de amortización, fijado al generar.
	AppliedInterest decimal.NullDecimal
}
