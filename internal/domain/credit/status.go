package credit

import (
	"time"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// DisplayStatus estado visible de una cuota en listados y reportes.
type DisplayStatus string

const (
	DisplayPaid    DisplayStatus = "Pagado"
	DisplayOverdue DisplayStatus = "Vencido"
	DisplayPending DisplayStatus = "Pendiente"
)

// Classify clasifica una cuota para presentación. Función pura de
// (estado, vencimiento, ahora): una cuota pagada nunca se reporta vencida,
// sin importar su fecha; una no pagada está vencida si su vencimiento ya pasó.
func Classify(status entity.InstallmentStatus, dueDate, now time.Time) DisplayStatus {
	if status == entity.InstallmentStatusPaid {
		return DisplayPaid
	}
	if dueDate.Before(now) {
		return DisplayOverdue
	}
	return DisplayPending
}
