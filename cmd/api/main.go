package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/usuarios-api/docs"
	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/internal/domain/repository"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/memory"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/postgres"
	"github.com/jhoicas/usuarios-api/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/usuarios-api/internal/interfaces/http"
	"github.com/jhoicas/usuarios-api/pkg/config"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

func main() {
	startedAt := time.Now()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var userRepo repository.UserRepository
	switch cfg.DB.Driver {
	case config.StoreDriverMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		userRepo = memory.NewUserRepo()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		userRepo = postgres.NewUserRepository(pool)
	}

	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost, cfg.Security.HashConcurrency)
	userUC := usecase.NewUserUseCase(userRepo, hasher)

	docs.SwaggerInfo.Version = cfg.App.Version
	app := httpRouter.NewApp(httpRouter.RouterDeps{
		UserUC:    userUC,
		Logger:    log.Named("http"),
		AppName:   cfg.App.Name,
		Version:   cfg.App.Version,
		StartedAt: startedAt,
		BodyLimit: cfg.HTTP.BodyLimit(),
		OpenAPI:   []byte(docs.SwaggerInfo.ReadDoc()),
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
