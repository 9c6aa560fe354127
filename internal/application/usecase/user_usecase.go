package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/domain"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	"github.com/tu-usuario/gympro-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase casos de uso de gestión de usuarios (el registro vive en auth).
type UserUseCase struct {
	repo      repository.UserRepository
	addresses repository.AddressRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, addresses repository.AddressRepository) *UserUseCase {
	return &UserUseCase{repo: repo, addresses: addresses}
}

// GetByID obtiene un usuario por ID, sin expandir. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista todos los usuarios con la dirección expandida.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserExpandedResponse, error) {
	users, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserExpandedResponse, 0, len(users))
	for _, user := range users {
		item := dto.UserExpandedResponse{
			ID:        user.ID,
			Email:     user.Email,
			Role:      user.Role,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Phone:     user.Phone,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		if user.AddressID != "" {
			address, err := uc.addresses.FindByID(ctx, user.AddressID)
			if err != nil {
				return nil, err
			}
			item.Address = toAddressResponse(address)
		}
		items = append(items, item)
	}
	return items, nil
}

// Update aplica una actualización parcial: los campos presentes sobrescriben,
// los ausentes no se tocan. Si llega password se re-hashea con bcrypt; si llega
// role se valida contra el enum. Devuelve (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Email != nil {
		if *in.Email == "" {
			return nil, domain.NewValidationError("Email is required")
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.NewValidationError("Password is required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.NewValidationError("Role must be one of customer, owner, superAdmin")
		}
		user.Role = *in.Role
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Address != nil {
		user.AddressID = *in.Address
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Devuelve ErrUserNotFound si el ID no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Address:   u.AddressID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
