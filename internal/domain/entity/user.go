package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Roles en el orden en que se listan en mensajes de error.
var Roles = []string{RoleAdmin, RoleManager, RoleUser}

// IsValidRole indica si r pertenece al conjunto de roles.
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User representa una cuenta del sistema. El ID y los timestamps los asigna el store.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca sale de la capa de aplicación
	FullName     string
	Role         string // admin, manager, user
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
