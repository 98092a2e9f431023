package security

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/jhoicas/usuarios-api/internal/application/ports"
	"github.com/jhoicas/usuarios-api/internal/domain"
)

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// MsgPasswordTooLong bcrypt solo considera los primeros 72 bytes.
const MsgPasswordTooLong = "Password must be at most 72 bytes long"

// BcryptHasher implementa PasswordHasher con bcrypt. Limita cuántos hashes corren a la vez
// para que una ráfaga de altas no acapare la CPU del resto de peticiones.
type BcryptHasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcryptHasher construye el hasher. cost <= 0 usa bcrypt.DefaultCost y
// concurrency <= 0 usa GOMAXPROCS.
func NewBcryptHasher(cost, concurrency int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &BcryptHasher{cost: cost, sem: semaphore.NewWeighted(int64(concurrency))}
}

// Hash genera un hash bcrypt con sal aleatoria.
func (h *BcryptHasher) Hash(ctx context.Context, plain string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("esperar turno de hash: %w", err)
	}
	defer h.sem.Release(1)

	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.NewValidationError(MsgPasswordTooLong)
		}
		return "", fmt.Errorf("generar hash: %w", err)
	}
	return string(b), nil
}

// Verify compara plain contra hash en tiempo constante (bcrypt).
func (h *BcryptHasher) Verify(ctx context.Context, plain, hash string) (bool, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("esperar turno de hash: %w", err)
	}
	defer h.sem.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("comparar hash: %w", err)
	}
}
