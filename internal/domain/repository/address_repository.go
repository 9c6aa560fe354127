package repository

import (
	"context"

	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// AddressRepository puerto de persistencia para Address.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id string) (*entity.Address, error)
	Find(ctx context.Context) ([]*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id string) error
}
