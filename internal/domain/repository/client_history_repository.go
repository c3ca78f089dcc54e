package repository

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// ClientHistoryRepository acceso al historial de clientes eliminados.
// Solo inserción y lectura: las entradas del historial son inmutables.
type ClientHistoryRepository interface {
	Create(ctx context.Context, entry *entity.ClientHistoryEntry) error
	// List devuelve el historial ordenado por fecha de eliminación descendente;
	// search filtra por nombre, apellido o cédula.
	List(ctx context.Context, search string) ([]*entity.ClientHistoryEntry, error)
}
