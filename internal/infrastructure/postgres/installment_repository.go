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

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

// InstallmentRepo implementación del puerto InstallmentRepository sobre PostgreSQL (usable con pool o tx).
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository construye el adaptador de persistencia para cuotas. Pasar pool o tx (Querier).
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

const installmentColumns = `id, venta_id, numero_cuota, monto_cuota, fecha_vencimiento, estado, fecha_pago, monto_pagado, interes_aplicado`

func scanInstallment(row pgx.Row) (*entity.Installment, error) {
	var i entity.Installment
	err := row.Scan(
		&i.ID, &i.SaleID, &i.Number, &i.AmountDue, &i.DueDate,
		&i.Status, &i.PaidDate, &i.AmountPaid, &i.AppliedInterest,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// CreateBatch inserta todas las cuotas del plan; vive dentro de la transacción
// de generación. La constraint única (venta_id, numero_cuota) respalda la
// generación única por venta.
func (r *InstallmentRepo) CreateBatch(ctx context.Context, installments []*entity.Installment) error {
	query := `
		INSERT INTO pagos_credito (id, venta_id, numero_cuota, monto_cuota, fecha_vencimiento, estado, fecha_pago, monto_pagado, interes_aplicado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, inst := range installments {
		_, err := r.q.Exec(ctx, query,
			inst.ID, inst.SaleID, inst.Number, inst.AmountDue, inst.DueDate,
			inst.Status, inst.PaidDate, inst.AmountPaid, inst.AppliedInterest,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrScheduleExists
			}
			return fmt.Errorf("insert cuota %d: %w", inst.Number, err)
		}
	}
	return nil
}

// GetByID obtiene una cuota por ID.
func (r *InstallmentRepo) GetByID(ctx context.Context, id string) (*entity.Installment, error) {
	i, err := scanInstallment(r.q.QueryRow(ctx, `SELECT `+installmentColumns+` FROM pagos_credito WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cuota: %w", err)
	}
	return i, nil
}

// ListBySale devuelve las cuotas de una venta ordenadas por número.
func (r *InstallmentRepo) ListBySale(ctx context.Context, saleID string) ([]*entity.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM pagos_credito WHERE venta_id = $1 ORDER BY numero_cuota`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list cuotas venta: %w", err)
	}
	defer rows.Close()

	var installments []*entity.Installment
	for rows.Next() {
		i, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cuota: %w", err)
		}
		installments = append(installments, i)
	}
	return installments, rows.Err()
}

// List devuelve cuotas con los datos de venta, cliente y terreno, ordenadas
// por vencimiento ascendente.
func (r *InstallmentRepo) List(ctx context.Context, search string) ([]repository.InstallmentWithRefs, error) {
	query := `
		SELECT p.id, p.venta_id, p.numero_cuota, p.monto_cuota, p.fecha_vencimiento, p.estado, p.fecha_pago, p.monto_pagado, p.interes_aplicado,
		       c.nombre, c.apellido, c.cedula,
		       t.numero_lote, t.seccion, t.manzana
		FROM pagos_credito p
		JOIN ventas v ON v.id = p.venta_id
		JOIN clientes c ON c.id = v.cliente_id
		JOIN terrenos t ON t.id = v.terreno_id
		WHERE ($1 = '' OR c.nombre ILIKE '%' || $1 || '%' OR c.apellido ILIKE '%' || $1 || '%' OR c.cedula ILIKE '%' || $1 || '%' OR t.numero_lote ILIKE '%' || $1 || '%' OR p.numero_cuota::text = $1)
		ORDER BY p.fecha_vencimiento ASC, p.numero_cuota ASC`
	rows, err := r.q.Query(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("list cuotas: %w", err)
	}
	defer rows.Close()

	var out []repository.InstallmentWithRefs
	for rows.Next() {
		var i repository.InstallmentWithRefs
		if err := rows.Scan(
			&i.ID, &i.SaleID, &i.Number, &i.AmountDue, &i.DueDate,
			&i.Status, &i.PaidDate, &i.AmountPaid, &i.AppliedInterest,
			&i.ClientFirstName, &i.ClientLastName, &i.ClientNationalID,
			&i.PlotLotNumber, &i.PlotSection, &i.PlotBlock,
		); err != nil {
			return nil, fmt.Errorf("scan cuota con refs: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

// CountBySale cuenta las cuotas de una venta.
func (r *InstallmentRepo) CountBySale(ctx context.Context, saleID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM pagos_credito WHERE venta_id = $1`, saleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cuotas: %w", err)
	}
	return count, nil
}

// CountPaidBySale cuenta las cuotas pagadas de una venta.
func (r *InstallmentRepo) CountPaidBySale(ctx context.Context, saleID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM pagos_credito WHERE venta_id = $1 AND estado = 'pagado'`, saleID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count cuotas pagadas: %w", err)
	}
	return count, nil
}

// RecordPayment persiste fecha_pago, monto_pagado y estado de la cuota.
// Sobrescribe el registro anterior: no hay libro de pagos parciales.
func (r *InstallmentRepo) RecordPayment(ctx context.Context, installment *entity.Installment) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE pagos_credito SET fecha_pago = $2, monto_pagado = $3, estado = $4 WHERE id = $1`,
		installment.ID, installment.PaidDate, installment.AmountPaid, installment.Status,
	)
	if err != nil {
		return fmt.Errorf("registrar pago: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
