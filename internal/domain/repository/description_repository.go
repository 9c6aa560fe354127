package repository

import (
	"context"

	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// DescriptionRepository puerto de persistencia para Description.
type DescriptionRepository interface {
	Create(ctx context.Context, description *entity.Description) error
	FindByID(ctx context.Context, id string) (*entity.Description, error)
	Find(ctx context.Context) ([]*entity.Description, error)
	Update(ctx context.Context, description *entity.Description) error
	Delete(ctx context.Context, id string) error
}
