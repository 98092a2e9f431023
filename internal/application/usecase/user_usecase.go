package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/ports"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

// Mensajes de respuesta de los casos de uso.
const (
	MsgUserCreated = "User created successfully"
	MsgUserUpdated = "User updated successfully"
	MsgUserDeleted = "User deleted successfully"
	MsgNoFields    = "No fields to update"
)

// UserUseCase aplica reglas de negocio para usuarios. No guarda estado propio: se construye
// una vez y se comparte entre handlers.
//
// Las comprobaciones de unicidad previas son solo para dar un Conflict legible; la garantía
// real son los índices únicos del store, cuyas violaciones también llegan como ErrConflict.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher ports.PasswordHasher
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, hasher ports.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher}
}

// Create da de alta un usuario. ErrConflict si el username o el email ya existen.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.repo.FindByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	hash, err := uc.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	id, err := uc.repo.Create(ctx, &entity.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List devuelve todos los usuarios, del más reciente al más antiguo.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID o ErrNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// FindByLogin busca un usuario por username o email (para un futuro login). ErrNotFound si no existe.
func (uc *UserUseCase) FindByLogin(ctx context.Context, usernameOrEmail string) (*dto.UserResponse, error) {
	user, err := uc.repo.FindByUsernameOrEmail(ctx, usernameOrEmail, usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica una actualización parcial: solo cambian los campos enviados y no vacíos.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.MessageResponse, error) {
	in = in.Normalize()
	if _, err := uc.mustGet(ctx, id); err != nil {
		return nil, err
	}

	if in.Username != nil || in.Email != nil {
		dup, err := uc.repo.FindDuplicate(ctx, id, in.Username, in.Email)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrConflict
		}
	}

	patch := entity.UserPatch{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		Role:     in.Role,
	}
	if patch.IsEmpty() {
		return nil, domain.NewValidationError(MsgNoFields)
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: MsgUserUpdated}, nil
}

// Delete elimina un usuario. ErrNotFound si no existe.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	if _, err := uc.mustGet(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: MsgUserDeleted}, nil
}

// VerifyPassword compara plain con el hash guardado del usuario. ErrNotFound si no existe.
func (uc *UserUseCase) VerifyPassword(ctx context.Context, id int64, plain string) (bool, error) {
	user, err := uc.mustGet(ctx, id)
	if err != nil {
		return false, err
	}
	ok, err := uc.hasher.Verify(ctx, plain, user.PasswordHash)
	if err != nil {
		return false, fmt.Errorf("verificar password de %d: %w", id, err)
	}
	return ok, nil
}

func (uc *UserUseCase) mustGet(ctx context.Context, id int64) (*entity.User, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
