// Package validation valida la forma de las peticiones de usuario antes de llegar al caso de uso.
// Las funciones son puras: no acceden al store y no tienen efectos secundarios.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
)

// Mensajes de validación expuestos al cliente.
const (
	MsgMissingFields  = "Missing required fields"
	MsgNoUpdateFields = "At least one field must be provided for update"
	MsgInvalidID      = "Invalid user ID. Must be a positive integer"
	MsgUsernameLength = "Username must be between 3 and 50 characters"
	MsgInvalidEmail   = "Invalid email format"
	MsgPasswordLength = "Password must be at least 6 characters long"
	MsgFullNameLength = "Full name must be between 2 and 100 characters"
	MsgInvalidRole    = "Role must be one of: admin, manager, user"
)

// RequiredCreateFields campos obligatorios al crear, en el orden en que se reportan.
var RequiredCreateFields = []string{"username", "email", "password", "fullName"}

// local@dominio.tld sin espacios (incluye espacios Unicode) ni arrobas extra en cada parte.
const emailPart = `[^@\s\v\pZ\x{FEFF}]+`

var emailRegexp = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

var fieldMessages = map[string]string{
	"username": MsgUsernameLength,
	"email":    MsgInvalidEmail,
	"password": MsgPasswordLength,
	"fullName": MsgFullNameLength,
	"role":     MsgInvalidRole,
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Reportar los campos con su nombre JSON
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("simple_email", validateSimpleEmail); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("user_role", validateRole); err != nil {
		panic(err)
	}
}

func validateSimpleEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

func validateRole(fl validator.FieldLevel) bool {
	return entity.IsValidRole(fl.Field().String())
}

// IsEmail indica si s tiene la forma local@dominio.tld.
func IsEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// ValidateCreate valida la petición de alta. Primero exige los cuatro campos obligatorios y
// luego el formato de cada uno en orden: username, email, password, fullName, role.
func ValidateCreate(in dto.CreateUserRequest) error {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FullName == "" {
		return domain.NewValidationError(MsgMissingFields, RequiredCreateFields...)
	}
	return check(in)
}

// ValidateUpdate valida una actualización parcial: al menos un campo enviado y cada
// campo enviado con el mismo formato que en el alta. Un string vacío cuenta como no enviado.
func ValidateUpdate(in dto.UpdateUserRequest) error {
	in = in.Normalize()
	if in.Username == nil && in.Email == nil && in.FullName == nil && in.Role == nil {
		return domain.NewValidationError(MsgNoUpdateFields)
	}
	return check(in)
}

// ParseID interpreta el identificador de ruta como entero positivo en base 10.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(MsgInvalidID)
	}
	return id, nil
}

// check ejecuta las reglas declaradas en las etiquetas validate y reporta el primer fallo.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("validar petición: %w", err)
	}
	fe := ves[0]
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return domain.NewValidationError(msg)
	}
	return domain.NewValidationError(fmt.Sprintf("Invalid value for %s", fe.Field()))
}
