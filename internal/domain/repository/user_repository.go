package repository

import (
	"context"

	"github.com/jhoicas/invoice-dashboard/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail devuelve nil, nil si no hay usuario con ese email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
