package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, email, password_hash, full_name, role, is_active, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// db puede ser el pool o una transacción.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario y devuelve el ID asignado por la base.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.db.QueryRow(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.FullName, user.Role, user.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrConflict
		}
		return 0, storeError("insert user", err)
	}
	return id, nil
}

// GetByID obtiene un usuario por ID; (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeError("get user by id", err)
	}
	return u, nil
}

// FindByUsernameOrEmail devuelve cualquier usuario cuyo username o email coincida.
func (r *UserRepo) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1`
	u, err := scanUser(r.db.QueryRow(ctx, query, username, email))
	if err != nil {
		return nil, storeError("find user by username or email", err)
	}
	return u, nil
}

// FindDuplicate busca otro usuario (distinto de excludeID) que ya use el username o email dados.
func (r *UserRepo) FindDuplicate(ctx context.Context, excludeID int64, username, email *string) (*entity.User, error) {
	if username == nil && email == nil {
		return nil, nil
	}
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE id <> $1 AND (username = $2 OR email = $3)
		LIMIT 1`
	u, err := scanUser(r.db.QueryRow(ctx, query, excludeID, username, email))
	if err != nil {
		return nil, storeError("find duplicate user", err)
	}
	return u, nil
}

// List devuelve todos los usuarios, del más reciente al más antiguo.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, storeError("list users", err)
	}
	defer rows.Close()

	list := make([]*entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, storeError("scan user", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list users", err)
	}
	return list, nil
}

// Update escribe solo las columnas presentes en patch y refresca updated_at.
func (r *UserRepo) Update(ctx context.Context, id int64, patch entity.UserPatch) error {
	query, args := buildUpdate(id, patch)
	if query == "" {
		return domain.ErrInvalidInput
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return storeError("update user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return storeError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildUpdate arma el UPDATE con placeholders; los nombres de columna vienen de la lista
// fija de entity.UserPatch, nunca del cliente.
func buildUpdate(id int64, patch entity.UserPatch) (string, []any) {
	fields := patch.Fields()
	if len(fields) == 0 {
		return "", nil
	}
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
