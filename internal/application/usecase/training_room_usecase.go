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

// TrainingRoomUseCase casos de uso CRUD para salas de entrenamiento, incluida
// la expansión de referencias en el listado (el equivalente al populate del
// almacén de documentos original).
type TrainingRoomUseCase struct {
	repo         repository.TrainingRoomRepository
	addresses    repository.AddressRepository
	users        repository.UserRepository
	exercises    repository.ExerciseRepository
	descriptions repository.DescriptionRepository
}

// NewTrainingRoomUseCase construye el caso de uso con los puertos de las
// entidades referenciadas.
func NewTrainingRoomUseCase(
	repo repository.TrainingRoomRepository,
	addresses repository.AddressRepository,
	users repository.UserRepository,
	exercises repository.ExerciseRepository,
	descriptions repository.DescriptionRepository,
) *TrainingRoomUseCase {
	return &TrainingRoomUseCase{
		repo:         repo,
		addresses:    addresses,
		users:        users,
		exercises:    exercises,
		descriptions: descriptions,
	}
}

// Create crea una nueva sala. Las referencias se guardan tal cual llegan,
// sin verificar que existan (referencias laxas).
func (uc *TrainingRoomUseCase) Create(ctx context.Context, in dto.TrainingRoomRequest) (*dto.TrainingRoomResponse, error) {
	now := time.Now()
	room := &entity.TrainingRoom{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Capacity:        int(*in.Capacity),
		Specializations: in.Specializations,
		AddressID:       in.Address,
		ResponsibleID:   in.Responsible,
		ExerciseIDs:     in.Exercises,
		DescriptionID:   in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return toTrainingRoomResponse(room), nil
}

// GetByID obtiene una sala por ID, sin expandir. Devuelve (nil, nil) si no existe.
func (uc *TrainingRoomUseCase) GetByID(ctx context.Context, id string) (*dto.TrainingRoomResponse, error) {
	room, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	return toTrainingRoomResponse(room), nil
}

// List lista todas las salas con address, responsible (solo nombre, teléfono y
// email), exercises y description expandidos. Una referencia rota se omite de
// la respuesta en lugar de fallar el listado.
func (uc *TrainingRoomUseCase) List(ctx context.Context) ([]dto.TrainingRoomExpandedResponse, error) {
	rooms, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrainingRoomExpandedResponse, 0, len(rooms))
	for _, room := range rooms {
		expanded, err := uc.expand(ctx, room)
		if err != nil {
			return nil, err
		}
		items = append(items, *expanded)
	}
	return items, nil
}

func (uc *TrainingRoomUseCase) expand(ctx context.Context, room *entity.TrainingRoom) (*dto.TrainingRoomExpandedResponse, error) {
	out := &dto.TrainingRoomExpandedResponse{
		ID:              room.ID,
		Name:            room.Name,
		Capacity:        room.Capacity,
		Specializations: room.Specializations,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}
	if room.AddressID != "" {
		address, err := uc.addresses.FindByID(ctx, room.AddressID)
		if err != nil {
			return nil, err
		}
		out.Address = toAddressResponse(address)
	}
	if room.ResponsibleID != "" {
		user, err := uc.users.FindByID(ctx, room.ResponsibleID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			out.Responsible = &dto.ResponsibleResponse{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Phone:     user.Phone,
				Email:     user.Email,
			}
		}
	}
	if len(room.ExerciseIDs) > 0 {
		exercises, err := uc.exercises.FindByIDs(ctx, room.ExerciseIDs)
		if err != nil {
			return nil, err
		}
		out.Exercises = make([]dto.ExerciseResponse, 0, len(exercises))
		for _, e := range exercises {
			out.Exercises = append(out.Exercises, *toExerciseResponse(e))
		}
	}
	if room.DescriptionID != "" {
		description, err := uc.descriptions.FindByID(ctx, room.DescriptionID)
		if err != nil {
			return nil, err
		}
		out.Description = toDescriptionResponse(description)
	}
	return out, nil
}

// Update reemplaza todos los campos de la sala. Devuelve (nil, nil) si no existe.
func (uc *TrainingRoomUseCase) Update(ctx context.Context, id string, in dto.TrainingRoomRequest) (*dto.TrainingRoomResponse, error) {
	room, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	room.Name = in.Name
	room.Capacity = int(*in.Capacity)
	room.Specializations = in.Specializations
	room.AddressID = in.Address
	room.ResponsibleID = in.Responsible
	room.ExerciseIDs = in.Exercises
	room.DescriptionID = in.Description
	room.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return toTrainingRoomResponse(room), nil
}

// Delete elimina una sala. Devuelve ErrNotFound si el ID no existe.
func (uc *TrainingRoomUseCase) Delete(ctx context.Context, id string) error {
	room, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toTrainingRoomResponse(tr *entity.TrainingRoom) *dto.TrainingRoomResponse {
	if tr == nil {
		return nil
	}
	return &dto.TrainingRoomResponse{
		ID:              tr.ID,
		Name:            tr.Name,
		Capacity:        tr.Capacity,
		Specializations: tr.Specializations,
		Address:         tr.AddressID,
		Responsible:     tr.ResponsibleID,
		Exercises:       tr.ExerciseIDs,
		Description:     tr.DescriptionID,
		CreatedAt:       tr.CreatedAt,
		UpdatedAt:       tr.UpdatedAt,
	}
}
