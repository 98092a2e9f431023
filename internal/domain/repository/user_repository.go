package repository

import (
	"context"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// Las búsquedas devuelven (nil, nil) cuando no hay fila. Las violaciones de unicidad
// en Create/Update se reportan como domain.ErrConflict y cualquier otra falla del store
// envuelve domain.ErrStore.
type UserRepository interface {
	// Create inserta el usuario y devuelve el ID asignado por el store.
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// FindByUsernameOrEmail devuelve cualquier fila con ese username o ese email.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	// FindDuplicate busca otra fila (id != excludeID) que ya tenga el username o email dados; nil = no comparar.
	FindDuplicate(ctx context.Context, excludeID int64, username, email *string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por created_at descendente.
	List(ctx context.Context) ([]*entity.User, error)
	// Update aplica el patch y refresca updated_at. domain.ErrNotFound si la fila ya no existe.
	Update(ctx context.Context, id int64, patch entity.UserPatch) error
	// Delete elimina la fila. domain.ErrNotFound si ya no existe.
	Delete(ctx context.Context, id int64) error
}
