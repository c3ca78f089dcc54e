package repository

import (
	"context"

	"github.com/montesagrado/camposanto-api/internal/domain/entity"
)

// UserRepository acceso a usuarios administrativos.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve nil, nil si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
