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

// AddressUseCase casos de uso CRUD para direcciones.
type AddressUseCase struct {
	repo repository.AddressRepository
}

// NewAddressUseCase construye el caso de uso.
func NewAddressUseCase(repo repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{repo: repo}
}

// Create crea una nueva dirección.
func (uc *AddressUseCase) Create(ctx context.Context, in dto.AddressRequest) (*dto.AddressResponse, error) {
	now := time.Now()
	address := &entity.Address{
		ID:        uuid.New().String(),
		Street:    in.Street,
		City:      in.City,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// GetByID obtiene una dirección por ID. Devuelve (nil, nil) si no existe.
func (uc *AddressUseCase) GetByID(ctx context.Context, id string) (*dto.AddressResponse, error) {
	address, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, nil
	}
	return toAddressResponse(address), nil
}

// List lista todas las direcciones.
func (uc *AddressUseCase) List(ctx context.Context) ([]dto.AddressResponse, error) {
	list, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AddressResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAddressResponse(a))
	}
	return items, nil
}

// Update reemplaza todos los campos de la dirección. Devuelve (nil, nil) si no existe.
func (uc *AddressUseCase) Update(ctx context.Context, id string, in dto.AddressRequest) (*dto.AddressResponse, error) {
	address, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, nil
	}
	address.Street = in.Street
	address.City = in.City
	address.ZipCode = in.ZipCode
	address.Country = in.Country
	address.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, address); err != nil {
		return nil, err
	}
	return toAddressResponse(address), nil
}

// Delete elimina una dirección. Devuelve ErrNotFound si el ID ya no existe:
// el borrado repetido del mismo ID se reporta como "no encontrado", no como
// error de persistencia.
func (uc *AddressUseCase) Delete(ctx context.Context, id string) error {
	address, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if address == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		ID:        a.ID,
		Street:    a.Street,
		City:      a.City,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
