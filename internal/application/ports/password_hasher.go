package ports

import "context"

// PasswordHasher define el puerto de salida para el hash de contraseñas.
// Es el único componente autorizado a comparar contraseñas: la aplicación nunca
// compara texto plano contra el hash por su cuenta.
type PasswordHasher interface {
	// Hash devuelve un hash salado e irreversible; dos llamadas con la misma entrada difieren.
	Hash(ctx context.Context, plain string) (string, error)
	// Verify indica si plain corresponde a hash. Un hash malformado es un error, no un false.
	Verify(ctx context.Context, plain, hash string) (bool, error)
}
