package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType forma de pago de una venta. Inmutable después de la creación:
// determina si la venta tiene plan de cuotas (crédito) o no (contado).
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "contado"
	PaymentTypeCredit PaymentType = "credito"
)

// Valid reporta si el tipo de pago es uno de los valores cerrados.
func (t PaymentType) Valid() bool {
	return t == PaymentTypeCash || t == PaymentTypeCredit
}

// SaleStatus estado de una venta.
type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "activa"
	SaleStatusPaid      SaleStatus = "pagada"
	SaleStatusCancelled SaleStatus = "cancelada"
)

// Valid reporta si el estado es uno de los valores cerrados.
func (s SaleStatus) Valid() bool {
	switch s {
	case SaleStatusActive, SaleStatusPaid, SaleStatusCancelled:
		return true
	}
	return false
}

// Sale liga un cliente con un terreno, con precio total y forma de pago.
// Una venta al contado reconoce su ingreso completo en la fecha de venta;
// una venta a crédito lo reconoce cuota a cuota según se cobra.
type Sale struct {
	ID          string
	ClientID    string
	PlotID      string
	TotalPrice  decimal.Decimal
	PaymentType PaymentType
	SaleDate    time.Time
	Status      SaleStatus
	Notes       string

	// Configuración de crédito; NULL hasta que se genera el plan de cuotas.
	NumInstallments *int
	InterestRate    *decimal.Decimal // tasa anual en % (0-100)

	CreatedAt time.Time
}
