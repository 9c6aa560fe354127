package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/domain"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	"github.com/tu-usuario/gympro-api/internal/domain/repository"
)

// ExerciseUseCase casos de uso CRUD para ejercicios.
type ExerciseUseCase struct {
	repo repository.ExerciseRepository
}

// NewExerciseUseCase construye el caso de uso.
func NewExerciseUseCase(repo repository.ExerciseRepository) *ExerciseUseCase {
	return &ExerciseUseCase{repo: repo}
}

// Create crea un nuevo ejercicio. El handler ya validó presencia y tipos;
// la dificultad llega normalizada a minúsculas.
func (uc *ExerciseUseCase) Create(ctx context.Context, in dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	now := time.Now()
	exercise := &entity.Exercise{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Duration:    *in.Duration,
		Repetitions: *in.Repetitions,
		Series:      *in.Series,
		Rest:        *in.Rest,
		Difficulty:  entity.NormalizeDifficulty(in.Difficulty),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return toExerciseResponse(exercise), nil
}

// GetByID obtiene un ejercicio por ID. Devuelve (nil, nil) si no existe.
func (uc *ExerciseUseCase) GetByID(ctx context.Context, id string) (*dto.ExerciseResponse, error) {
	exercise, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, nil
	}
	return toExerciseResponse(exercise), nil
}

// List lista todos los ejercicios.
func (uc *ExerciseUseCase) List(ctx context.Context) ([]dto.ExerciseResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExerciseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExerciseResponse(e))
	}
	return items, nil
}

// Update reemplaza todos los campos del ejercicio. Devuelve (nil, nil) si no existe.
func (uc *ExerciseUseCase) Update(ctx context.Context, id string, in dto.ExerciseRequest) (*dto.ExerciseResponse, error) {
	exercise, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, nil
	}
	exercise.Name = in.Name
	exercise.Description = in.Description
	exercise.Duration = *in.Duration
	exercise.Repetitions = *in.Repetitions
	exercise.Series = *in.Series
	exercise.Rest = *in.Rest
	exercise.Difficulty = entity.NormalizeDifficulty(in.Difficulty)
	exercise.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return toExerciseResponse(exercise), nil
}

// Delete elimina un ejercicio. Devuelve ErrNotFound si el ID no existe.
func (uc *ExerciseUseCase) Delete(ctx context.Context, id string) error {
	exercise, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if exercise == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toExerciseResponse(e *entity.Exercise) *dto.ExerciseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExerciseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Duration:    e.Duration,
		Repetitions: e.Repetitions,
		Series:      e.Series,
		Rest:        e.Rest,
		Difficulty:  e.Difficulty,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
