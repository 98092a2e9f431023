package postgres

import (
	"context"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// SeedAdmin inserta la cuenta administradora si no existe ninguna con ese username o email.
// Devuelve true si la creó.
func SeedAdmin(ctx context.Context, db Querier, admin *entity.User) (bool, error) {
	tag, err := db.Exec(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT DO NOTHING`,
		admin.Username, admin.Email, admin.PasswordHash, admin.FullName, entity.RoleAdmin,
	)
	if err != nil {
		return false, storeError("seed admin", err)
	}
	return tag.RowsAffected() == 1, nil
}
