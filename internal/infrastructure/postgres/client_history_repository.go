package postgres

import (
	"context"
	"fmt"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

var _ repository.ClientHistoryRepository = (*ClientHistoryRepo)(nil)

// ClientHistoryRepo implementación del puerto ClientHistoryRepository sobre PostgreSQL.
type ClientHistoryRepo struct {
	q Querier
}

// NewClientHistoryRepository construye el adaptador de persistencia del historial. Pasar pool o tx (Querier).
func NewClientHistoryRepository(q Querier) *ClientHistoryRepo {
	return &ClientHistoryRepo{q: q}
}

// Create inserta la foto del cliente eliminado.
func (r *ClientHistoryRepo) Create(ctx context.Context, entry *entity.ClientHistoryEntry) error {
	query := `
		INSERT INTO clientes_historial (id, cliente_id_original, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, fecha_eliminacion, motivo_eliminacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.OriginalClientID, entry.FirstName, entry.LastName, entry.NationalID,
		entry.Phone, entry.Email, entry.Address, entry.RegisteredAt, entry.DeletedAt, entry.DeletionReason,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// List devuelve el historial, más reciente primero.
func (r *ClientHistoryRepo) List(ctx context.Context, search string) ([]*entity.ClientHistoryEntry, error) {
	query := `
		SELECT id, cliente_id_original, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, fecha_eliminacion, motivo_eliminacion
		FROM clientes_historial
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR apellido ILIKE '%' || $1 || '%' OR cedula ILIKE '%' || $1 || '%')
		ORDER BY fecha_eliminacion DESC`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ClientHistoryEntry
	for rows.Next() {
		var e entity.ClientHistoryEntry
		if err := rows.Scan(
			&e.ID, &e.OriginalClientID, &e.FirstName, &e.LastName, &e.NationalID,
			&e.Phone, &e.Email, &e.Address, &e.RegisteredAt, &e.DeletedAt, &e.DeletionReason,
		); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
