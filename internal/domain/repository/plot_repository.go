package repository

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// PlotRepository acceso a terrenos.
type PlotRepository interface {
	Create(ctx context.Context, plot *entity.Plot) error
	GetByID(ctx context.Context, id string) (*entity.Plot, error)
	// GetByIDForUpdate bloquea la fila del terreno dentro de la transacción en
	// curso (SELECT ... FOR UPDATE) para la transición disponible -> vendido.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Plot, error)
	// List lista terrenos; status vacío devuelve todos.
	List(ctx context.Context, status entity.PlotStatus) ([]*entity.Plot, error)
	Update(ctx context.Context, plot *entity.Plot) error
	UpdateStatus(ctx context.Context, id string, status entity.PlotStatus) error
}
