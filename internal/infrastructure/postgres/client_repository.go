package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clientes (id, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		client.ID, client.FirstName, client.LastName, client.NationalID,
		client.Phone, client.Email, client.Address, client.RegisteredAt, client.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, activo
		FROM clientes WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.NationalID,
		&c.Phone, &c.Email, &c.Address, &c.RegisteredAt, &c.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// GetByNationalID obtiene un cliente activo por cédula.
func (r *ClientRepo) GetByNationalID(ctx context.Context, nationalID string) (*entity.Client, error) {
	query := `
		SELECT id, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, activo
		FROM clientes WHERE cedula = $1 AND activo = true`
	var c entity.Client
	err := r.q.QueryRow(ctx, query, nationalID).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.NationalID,
		&c.Phone, &c.Email, &c.Address, &c.RegisteredAt, &c.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by cedula: %w", err)
	}
	return &c, nil
}

// ListActive lista clientes activos ordenados por fecha de registro descendente.
func (r *ClientRepo) ListActive(ctx context.Context, search string) ([]*entity.Client, error) {
	query := `
		SELECT id, nombre, apellido, cedula, telefono, email, direccion, fecha_registro, activo
		FROM clientes
		WHERE activo = true
		  AND ($1 = '' OR nombre ILIKE '%' || $1 || '%' OR apellido ILIKE '%' || $1 || '%' OR cedula ILIKE '%' || $1 || '%')
		ORDER BY fecha_registro DESC`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.NationalID,
			&c.Phone, &c.Email, &c.Address, &c.RegisteredAt, &c.Active,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// Update edita los datos de un cliente.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clientes
		SET nombre = $2, apellido = $3, cedula = $4, telefono = $5, email = $6, direccion = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		client.ID, client.FirstName, client.LastName, client.NationalID,
		client.Phone, client.Email, client.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca el cliente como inactivo (borrado lógico).
func (r *ClientRepo) Deactivate(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE clientes SET activo = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
