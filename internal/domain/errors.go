package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Taxonomía: entrada inválida se rechaza antes de tocar la base; los conflictos
// de regla de negocio (terreno vendido, plan duplicado) se reportan con nombre;
// cualquier otro fallo del store se propaga como error genérico reintentabile
// por el usuario.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Reglas del ciclo de venta y crédito.
	ErrPlotNotAvailable    = errors.New("el terreno no está disponible para la venta")
	ErrSaleNotCredit       = errors.New("la venta no es a crédito")
	ErrSaleNotActive       = errors.New("la venta no está activa")
	ErrScheduleExists      = errors.New("la venta ya tiene un plan de cuotas generado")
	ErrHasPaidInstallments = errors.New("la venta tiene cuotas pagadas")
)
