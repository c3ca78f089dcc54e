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

var _ repository.PlotRepository = (*PlotRepo)(nil)

// PlotRepo implementación del puerto PlotRepository sobre PostgreSQL (usable con pool o tx).
type PlotRepo struct {
	q Querier
}

// NewPlotRepository construye el adaptador de persistencia para terrenos. Pasar pool o tx (Querier).
func NewPlotRepository(q Querier) *PlotRepo {
	return &PlotRepo{q: q}
}

const plotColumns = `id, numero_lote, seccion, manzana, precio, tipo, estado, dimensiones, descripcion`

func scanPlot(row pgx.Row) (*entity.Plot, error) {
	var p entity.Plot
	err := row.Scan(
		&p.ID, &p.LotNumber, &p.Section, &p.Block, &p.Price,
		&p.Type, &p.Status, &p.Dimensions, &p.Description,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un terreno nuevo.
func (r *PlotRepo) Create(ctx context.Context, plot *entity.Plot) error {
	query := `
		INSERT INTO terrenos (id, numero_lote, seccion, manzana, precio, tipo, estado, dimensiones, descripcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		plot.ID, plot.LotNumber, plot.Section, plot.Block, plot.Price,
		plot.Type, plot.Status, plot.Dimensions, plot.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert terreno: %w", err)
	}
	return nil
}

// GetByID obtiene un terreno por ID.
func (r *PlotRepo) GetByID(ctx context.Context, id string) (*entity.Plot, error) {
	p, err := scanPlot(r.q.QueryRow(ctx, `SELECT `+plotColumns+` FROM terrenos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get terreno: %w", err)
	}
	return p, nil
}

// GetByIDForUpdate obtiene un terreno bloqueando su fila en la transacción en curso.
func (r *PlotRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Plot, error) {
	p, err := scanPlot(r.q.QueryRow(ctx, `SELECT `+plotColumns+` FROM terrenos WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get terreno for update: %w", err)
	}
	return p, nil
}

// List lista terrenos ordenados por sección, manzana y lote; status vacío devuelve todos.
func (r *PlotRepo) List(ctx context.Context, status entity.PlotStatus) ([]*entity.Plot, error) {
	query := `
		SELECT ` + plotColumns + `
		FROM terrenos
		WHERE ($1 = '' OR estado = $1)
		ORDER BY seccion, manzana, numero_lote`
	rows, err := r.q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("list terrenos: %w", err)
	}
	defer rows.Close()

	var plots []*entity.Plot
	for rows.Next() {
		p, err := scanPlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan terreno: %w", err)
		}
		plots = append(plots, p)
	}
	return plots, rows.Err()
}

// Update edita los datos de un terreno.
func (r *PlotRepo) Update(ctx context.Context, plot *entity.Plot) error {
	query := `
		UPDATE terrenos
		SET numero_lote = $2, seccion = $3, manzana = $4, precio = $5, tipo = $6, estado = $7, dimensiones = $8, descripcion = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		plot.ID, plot.LotNumber, plot.Section, plot.Block, plot.Price,
		plot.Type, plot.Status, plot.Dimensions, plot.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update terreno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia el estado comercial del terreno.
func (r *PlotRepo) UpdateStatus(ctx context.Context, id string, status entity.PlotStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE terrenos SET estado = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estado terreno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
