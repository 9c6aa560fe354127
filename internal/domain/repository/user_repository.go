package repository

import (
	"context"

	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Todas las operaciones reciben el context de la petición para acotar la latencia.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Find(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
