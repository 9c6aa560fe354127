package repository

import (
	"context"

	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// ExerciseRepository puerto de persistencia para Exercise.
// FindByIDs existe para la expansión de referencias de TrainingRoom.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *entity.Exercise) error
	FindByID(ctx context.Context, id string) (*entity.Exercise, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Exercise, error)
	Find(ctx context.Context) ([]*entity.Exercise, error)
	Update(ctx context.Context, exercise *entity.Exercise) error
	Delete(ctx context.Context, id string) error
}
