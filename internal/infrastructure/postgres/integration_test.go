package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/pkg/config"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// newTestPool levanta un PostgreSQL efímero, aplica las migraciones y devuelve el pool.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("usuarios"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: connStr, MaxConns: 5, MinConns: 1}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = Migrate(ctx, pool)
	require.NoError(t, err)
	return pool
}

func testUser(username, email string) *entity.User {
	return &entity.User{Username: username, Email: email, PasswordHash: "$2a$04$hash", FullName: "Test User", Role: entity.RoleUser, IsActive: true}
}

func TestUserRepo_Integracion(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	aliceID, err := repo.Create(ctx, testUser("alice", "a@b.com"))
	require.NoError(t, err)
	assert.Positive(t, aliceID)
	bobID, err := repo.Create(ctx, testUser("bob", "bob@b.com"))
	require.NoError(t, err)

	t.Run("GetByID", func(t *testing.T) {
		u, err := repo.GetByID(ctx, aliceID)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "alice", u.Username)
		assert.True(t, u.IsActive)
		assert.False(t, u.CreatedAt.IsZero())

		missing, err := repo.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("CreateDuplicadoEsConflict", func(t *testing.T) {
		_, err := repo.Create(ctx, testUser("alice", "otro@b.com"))
		assert.ErrorIs(t, err, domain.ErrConflict)
		_, err = repo.Create(ctx, testUser("otro", "a@b.com"))
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("FindByUsernameOrEmail", func(t *testing.T) {
		u, err := repo.FindByUsernameOrEmail(ctx, "nadie", "bob@b.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, bobID, u.ID)
	})

	t.Run("FindDuplicate", func(t *testing.T) {
		dup, err := repo.FindDuplicate(ctx, aliceID, ptr("alice"), nil)
		require.NoError(t, err)
		assert.Nil(t, dup)

		dup, err = repo.FindDuplicate(ctx, aliceID, nil, ptr("bob@b.com"))
		require.NoError(t, err)
		require.NotNil(t, dup)
		assert.Equal(t, bobID, dup.ID)
	})

	t.Run("List", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, bobID, list[0].ID)
	})

	t.Run("UpdateParcial", func(t *testing.T) {
		before, err := repo.GetByID(ctx, aliceID)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, aliceID, entity.UserPatch{FullName: ptr("Alice B")}))

		after, err := repo.GetByID(ctx, aliceID)
		require.NoError(t, err)
		assert.Equal(t, "Alice B", after.FullName)
		assert.Equal(t, before.Email, after.Email)
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("UpdateErrores", func(t *testing.T) {
		assert.ErrorIs(t, repo.Update(ctx, 999999, entity.UserPatch{FullName: ptr("X Y")}), domain.ErrNotFound)
		assert.ErrorIs(t, repo.Update(ctx, aliceID, entity.UserPatch{Email: ptr("bob@b.com")}), domain.ErrConflict)
	})

	t.Run("RoleInvalidoEsErrorDeStore", func(t *testing.T) {
		err := repo.Update(ctx, aliceID, entity.UserPatch{Role: ptr("root")})
		assert.ErrorIs(t, err, domain.ErrStore)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, bobID))
		u, err := repo.GetByID(ctx, bobID)
		require.NoError(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, repo.Delete(ctx, bobID), domain.ErrNotFound)
	})
}

func TestMigrateYSeed_Idempotentes(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	runner := NewTxRunner(pool)

	admin := &entity.User{Username: "admin", Email: "admin@example.com", PasswordHash: "$2a$04$hash", FullName: "System Administrator"}

	var created bool
	err := runner.Run(ctx, func(tx pgx.Tx) error {
		if _, err := Migrate(ctx, tx); err != nil {
			return err
		}
		var err error
		created, err = SeedAdmin(ctx, tx, admin)
		return err
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(ctx, pool, admin)
	require.NoError(t, err)
	assert.False(t, created, "la segunda corrida no duplica al admin")

	u, err := NewUserRepository(pool).FindByUsernameOrEmail(ctx, "admin", "")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTxRunner(pool).Run(ctx, func(tx pgx.Tx) error {
		if _, err := NewUserRepository(tx).Create(ctx, testUser("fantasma", "f@b.com")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	u, err := NewUserRepository(pool).FindByUsernameOrEmail(ctx, "fantasma", "f@b.com")
	require.NoError(t, err)
	assert.Nil(t, u)
}
