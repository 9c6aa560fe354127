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

// DescriptionUseCase casos de uso CRUD para descripciones de salas.
type DescriptionUseCase struct {
	repo repository.DescriptionRepository
}

// NewDescriptionUseCase construye el caso de uso.
func NewDescriptionUseCase(repo repository.DescriptionRepository) *DescriptionUseCase {
	return &DescriptionUseCase{repo: repo}
}

// Create crea una nueva descripción.
func (uc *DescriptionUseCase) Create(ctx context.Context, in dto.DescriptionRequest) (*dto.DescriptionResponse, error) {
	now := time.Now()
	description := &entity.Description{
		ID:            uuid.New().String(),
		Installations: in.Installations,
		Equipments:    in.Equipments,
		Activities:    in.Activities,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, description); err != nil {
		return nil, err
	}
	return toDescriptionResponse(description), nil
}

// GetByID obtiene una descripción por ID. Devuelve (nil, nil) si no existe.
func (uc *DescriptionUseCase) GetByID(ctx context.Context, id string) (*dto.DescriptionResponse, error) {
	description, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if description == nil {
		return nil, nil
	}
	return toDescriptionResponse(description), nil
}

// List lista todas las descripciones.
func (uc *DescriptionUseCase) List(ctx context.Context) ([]dto.DescriptionResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DescriptionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDescriptionResponse(d))
	}
	return items, nil
}

// Update reemplaza todos los campos de la descripción. Devuelve (nil, nil) si no existe.
func (uc *DescriptionUseCase) Update(ctx context.Context, id string, in dto.DescriptionRequest) (*dto.DescriptionResponse, error) {
	description, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if description == nil {
		return nil, nil
	}
	description.Installations = in.Installations
	description.Equipments = in.Equipments
	description.Activities = in.Activities
	description.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, description); err != nil {
		return nil, err
	}
	return toDescriptionResponse(description), nil
}

// Delete elimina una descripción. Devuelve ErrNotFound si el ID no existe.
func (uc *DescriptionUseCase) Delete(ctx context.Context, id string) error {
	description, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if description == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toDescriptionResponse(d *entity.Description) *dto.DescriptionResponse {
	if d == nil {
		return nil
	}
	return &dto.DescriptionResponse{
		ID:            d.ID,
		Installations: d.Installations,
		Equipments:    d.Equipments,
		Activities:    d.Activities,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
