package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,simple_email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Role     string `json:"role" validate:"omitempty,user_role"`
}

// UpdateUserRequest entrada para actualizar un usuario. Campos nil = no enviados.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitnil,min=3,max=50"`
	Email    *string `json:"email" validate:"omitnil,simple_email"`
	FullName *string `json:"fullName" validate:"omitnil,min=2,max=100"`
	Role     *string `json:"role" validate:"omitnil,user_role"`
}

// Normalize devuelve una copia donde los strings vacíos cuentan como no enviados.
func (r UpdateUserRequest) Normalize() UpdateUserRequest {
	return UpdateUserRequest{
		Username: nonEmpty(r.Username),
		Email:    nonEmpty(r.Email),
		FullName: nonEmpty(r.FullName),
		Role:     nonEmpty(r.Role),
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// UserResponse proyección pública de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserResponse salida de POST /users.
type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
