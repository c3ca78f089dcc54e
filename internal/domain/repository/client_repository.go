package repository

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// ClientRepository acceso a clientes.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	GetByNationalID(ctx context.Context, nationalID string) (*entity.Client, error)
	// ListActive lista clientes con activo = true; search filtra por nombre,
	// apellido o cédula (vacío = todos).
	ListActive(ctx context.Context, search string) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Deactivate(ctx context.Context, id string) error
}
