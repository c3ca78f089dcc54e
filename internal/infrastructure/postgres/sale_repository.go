package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/montesagrado/camposanto-api/internal/domain"
	"github.com/montesagrado/camposanto-api/internal/domain/entity"
	"github.com/montesagrado/camposanto-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, cliente_id, terreno_id, precio_total, tipo_pago, fecha_venta, estado, notas, numero_cuotas, tasa_interes, created_at`

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ClientID, &s.PlotID, &s.TotalPrice, &s.PaymentType,
		&s.SaleDate, &s.Status, &s.Notes, &s.NumInstallments, &s.InterestRate, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una venta nueva.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id, cliente_id, terreno_id, precio_total, tipo_pago, fecha_venta, estado, notas, numero_cuotas, tasa_interes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ClientID, sale.PlotID, sale.TotalPrice, sale.PaymentType,
		sale.SaleDate, sale.Status, sale.Notes, sale.NumInstallments, sale.InterestRate, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM ventas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate obtiene una venta bloqueando su fila en la transacción en curso.
func (r *SaleRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM ventas WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta for update: %w", err)
	}
	return s, nil
}

// GetWithRefs devuelve la venta con los datos de su cliente y terreno.
func (r *SaleRepo) GetWithRefs(ctx context.Context, id string) (*repository.SaleWithRefs, error) {
	query := `
		SELECT v.id, v.cliente_id, v.terreno_id, v.precio_total, v.tipo_pago, v.fecha_venta, v.estado, v.notas, v.numero_cuotas, v.tasa_interes, v.created_at,
		       c.nombre, c.apellido, c.cedula,
		       t.numero_lote, t.seccion, t.manzana
		FROM ventas v
		JOIN clientes c ON c.id = v.cliente_id
		JOIN terrenos t ON t.id = v.terreno_id
		WHERE v.id = $1`
	var s repository.SaleWithRefs
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ClientID, &s.PlotID, &s.TotalPrice, &s.PaymentType,
		&s.SaleDate, &s.Status, &s.Notes, &s.NumInstallments, &s.InterestRate, &s.CreatedAt,
		&s.ClientFirstName, &s.ClientLastName, &s.ClientNationalID,
		&s.PlotLotNumber, &s.PlotSection, &s.PlotBlock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta con refs: %w", err)
	}
	return &s, nil
}

// List devuelve ventas con cliente y terreno, más recientes primero.
func (r *SaleRepo) List(ctx context.Context, search string) ([]repository.SaleWithRefs, error) {
	query := `
		SELECT v.id, v.cliente_id, v.terreno_id, v.precio_total, v.tipo_pago, v.fecha_venta, v.estado, v.notas, v.numero_cuotas, v.tasa_interes, v.created_at,
		       c.nombre, c.apellido, c.cedula,
		       t.numero_lote, t.seccion, t.manzana
		FROM ventas v
		JOIN clientes c ON c.id = v.cliente_id
		JOIN terrenos t ON t.id = v.terreno_id
		WHERE ($1 = '' OR c.nombre ILIKE '%' || $1 || '%' OR c.apellido ILIKE '%' || $1 || '%' OR c.cedula ILIKE '%' || $1 || '%' OR t.numero_lote ILIKE '%' || $1 || '%')
		ORDER BY v.fecha_venta DESC, v.created_at DESC`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var sales []repository.SaleWithRefs
	for rows.Next() {
		var s repository.SaleWithRefs
		if err := rows.Scan(
			&s.ID, &s.ClientID, &s.PlotID, &s.TotalPrice, &s.PaymentType,
			&s.SaleDate, &s.Status, &s.Notes, &s.NumInstallments, &s.InterestRate, &s.CreatedAt,
			&s.ClientFirstName, &s.ClientLastName, &s.ClientNationalID,
			&s.PlotLotNumber, &s.PlotSection, &s.PlotBlock,
		); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// SetCreditTerms fija número de cuotas y tasa de la venta al generar el plan.
func (r *SaleRepo) SetCreditTerms(ctx context.Context, saleID string, numInstallments int, annualRatePct decimal.Decimal) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ventas SET numero_cuotas = $2, tasa_interes = $3 WHERE id = $1`,
		saleID, numInstallments, annualRatePct,
	)
	if err != nil {
		return fmt.Errorf("set terminos credito: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado de la venta.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id string, status entity.SaleStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE ventas SET estado = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estado venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
