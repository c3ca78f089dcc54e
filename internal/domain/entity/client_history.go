package entity

import "time"

// ClientHistoryEntry es la foto de un cliente al momento de su eliminación.
// Se crea únicamente vía la transición a historial; nunca se actualiza.
type ClientHistoryEntry struct {
	ID               string
	OriginalClientID string
	FirstName        string
	LastName         string
	NationalID       string
	Phone            string
	Email            string
	Address          string
	RegisteredAt     time.Time
	DeletedAt        time.Time
	DeletionReason   string
}
