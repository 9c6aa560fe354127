package repository

import (
	"context"

	"github.com/tu-usuario/gympro-api/internal/domain/entity"
)

// TrainingRoomRepository puerto de persistencia para TrainingRoom.
type TrainingRoomRepository interface {
	Create(ctx context.Context, room *entity.TrainingRoom) error
	FindByID(ctx context.Context, id string) (*entity.TrainingRoom, error)
	Find(ctx context.Context) ([]*entity.TrainingRoom, error)
	Update(ctx context.Context, room *entity.TrainingRoom) error
	Delete(ctx context.Context, id string) error
}
