package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/application/validation"
	"github.com/jhoicas/usuarios-api/internal/domain"
)

func ptr(s string) *string { return &s }

func validCreate() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: "alice",
		Email:    "a@b.com",
		Password: "secret1",
		FullName: "Alice A",
	}
}

// requireValidation comprueba que err sea InvalidInput con el mensaje dado.
func requireValidation(t *testing.T, err error, msg string) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput), "debe ser InvalidInput")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, msg, ve.Message)
	return ve
}

func TestValidateCreate_OK(t *testing.T) {
	assert.NoError(t, validation.ValidateCreate(validCreate()))

	in := validCreate()
	in.Role = "manager"
	assert.NoError(t, validation.ValidateCreate(in))
}

func TestValidateCreate_CamposFaltantesEnumeraRequeridos(t *testing.T) {
	cases := map[string]func(*dto.CreateUserRequest){
		"username": func(in *dto.CreateUserRequest) { in.Username = "" },
		"email":    func(in *dto.CreateUserRequest) { in.Email = "" },
		"password": func(in *dto.CreateUserRequest) { in.Password = "" },
		"fullName": func(in *dto.CreateUserRequest) { in.FullName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validCreate()
			mutate(&in)
			ve := requireValidation(t, validation.ValidateCreate(in), validation.MsgMissingFields)
			assert.Equal(t, []string{"username", "email", "password", "fullName"}, ve.Required)
		})
	}
}

func TestValidateCreate_Formatos(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateUserRequest)
		msg    string
	}{
		{"username corto", func(in *dto.CreateUserRequest) { in.Username = "al" }, validation.MsgUsernameLength},
		{"username largo", func(in *dto.CreateUserRequest) { in.Username = strings.Repeat("a", 51) }, validation.MsgUsernameLength},
		{"email sin arroba", func(in *dto.CreateUserRequest) { in.Email = "ab.com" }, validation.MsgInvalidEmail},
		{"email sin tld", func(in *dto.CreateUserRequest) { in.Email = "a@b" }, validation.MsgInvalidEmail},
		{"email con espacio", func(in *dto.CreateUserRequest) { in.Email = "a b@c.com" }, validation.MsgInvalidEmail},
		{"password corto", func(in *dto.CreateUserRequest) { in.Password = "12345" }, validation.MsgPasswordLength},
		{"fullName corto", func(in *dto.CreateUserRequest) { in.FullName = "A" }, validation.MsgFullNameLength},
		{"fullName largo", func(in *dto.CreateUserRequest) { in.FullName = strings.Repeat("x", 101) }, validation.MsgFullNameLength},
		{"role desconocido", func(in *dto.CreateUserRequest) { in.Role = "root" }, validation.MsgInvalidRole},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			ve := requireValidation(t, validation.ValidateCreate(in), tc.msg)
			assert.Empty(t, ve.Required)
		})
	}
}

func TestValidateCreate_LimitesInclusivos(t *testing.T) {
	in := validCreate()
	in.Username = "abc"
	in.FullName = strings.Repeat("y", 100)
	in.Password = "123456"
	assert.NoError(t, validation.ValidateCreate(in))

	in.Username = strings.Repeat("a", 50)
	in.FullName = "Al"
	assert.NoError(t, validation.ValidateCreate(in))
}

// La longitud se mide en caracteres, no en bytes.
func TestValidateCreate_LongitudEnCaracteres(t *testing.T) {
	in := validCreate()
	in.Username = "ñño" // 3 caracteres, 6 bytes
	assert.NoError(t, validation.ValidateCreate(in))
}

// Se reporta el primer campo inválido en el orden username, email, password, fullName.
func TestValidateCreate_PrimerErrorEnOrden(t *testing.T) {
	in := validCreate()
	in.Email = "malo"
	in.Password = "1"
	requireValidation(t, validation.ValidateCreate(in), validation.MsgInvalidEmail)
}

func TestValidateUpdate_SinCampos(t *testing.T) {
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{}), validation.MsgNoUpdateFields)
}

func TestValidateUpdate_CamposEnviados(t *testing.T) {
	assert.NoError(t, validation.ValidateUpdate(dto.UpdateUserRequest{FullName: ptr("Alice B")}))
	assert.NoError(t, validation.ValidateUpdate(dto.UpdateUserRequest{Role: ptr("admin"), Email: ptr("x@y.io")}))

	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{Username: ptr("ab")}), validation.MsgUsernameLength)
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{Email: ptr("x@y")}), validation.MsgInvalidEmail)
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{FullName: ptr("Z")}), validation.MsgFullNameLength)
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{Role: ptr("owner")}), validation.MsgInvalidRole)
}

// Un string vacío cuenta como no enviado: no se valida su formato.
func TestValidateUpdate_CampoVacioNoCuentaComoEnviado(t *testing.T) {
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{Username: ptr("")}), validation.MsgNoUpdateFields)
	requireValidation(t, validation.ValidateUpdate(dto.UpdateUserRequest{Email: ptr(""), Role: ptr("")}), validation.MsgNoUpdateFields)

	assert.NoError(t, validation.ValidateUpdate(dto.UpdateUserRequest{Email: ptr(""), FullName: ptr("Alice B")}))
}

func TestParseID(t *testing.T) {
	id, err := validation.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "0", "-3", "abc", "12abc", "1.5", "99999999999999999999"} {
		_, err := validation.ParseID(raw)
		requireValidation(t, err, validation.MsgInvalidID)
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, validation.IsEmail("user.name+tag@sub.example.co"))
	assert.False(t, validation.IsEmail("a@@b.com"))
	assert.False(t, validation.IsEmail("a@b.com "))
}
