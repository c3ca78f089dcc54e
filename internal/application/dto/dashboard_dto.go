package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen general del sistema.
//
// IngresosMensuales mezcla devengado y base caja por diseño: ventas al contado
// del mes por su precio completo, más lo realmente cobrado en el mes por
// cuotas de crédito (sin importar el mes de la venta madre).
type DashboardStatsDTO struct {
	ClientesActivos     int             `json:"clientes_activos"`
	TerrenosDisponibles int             `json:"terrenos_disponibles"`
	TotalVentas         int             `json:"total_ventas"`
	VentasEsteMes       int             `json:"ventas_este_mes"`
	IngresosMensuales   decimal.Decimal `json:"ingresos_mensuales"`
	IngresosFormateados string          `json:"ingresos_formateados"` // con la moneda del despliegue
	Mes                 string          `json:"mes"`                  // etiqueta legible, ej. "Agosto 2026"
}
