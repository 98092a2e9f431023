// Command migrate aplica el esquema de la base y crea la cuenta administradora por defecto.
package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/usuarios-api/internal/domain/entity"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/security"
	"github.com/jhoicas/usuarios-api/pkg/config"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost, cfg.Security.HashConcurrency)
	hash, err := hasher.Hash(ctx, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de la contraseña del admin")
	}
	admin := &entity.User{
		Username:     cfg.Seed.AdminUsername,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hash,
		FullName:     cfg.Seed.AdminFullName,
	}

	var (
		applied []string
		created bool
	)
	err = postgres.NewTxRunner(pool).Run(ctx, func(tx pgx.Tx) error {
		var err error
		if applied, err = postgres.Migrate(ctx, tx); err != nil {
			return err
		}
		created, err = postgres.SeedAdmin(ctx, tx, admin)
		return err
	})
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	log.Info().Strs("migraciones", applied).Msg("esquema aplicado")
	if created {
		log.Info().Str("username", admin.Username).Msg("usuario admin creado")
	} else {
		log.Info().Str("username", admin.Username).Msg("usuario admin ya existía")
	}
}
