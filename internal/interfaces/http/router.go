package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/usuarios-api/internal/application/usecase"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	Logger    *logger.Logger
	AppName   string
	Version   string
	StartedAt time.Time
	BodyLimit int    // bytes; 0 = límite por defecto de Fiber
	OpenAPI   []byte // documento OpenAPI para /docs; nil = sin Swagger UI
}

// NewApp construye la aplicación Fiber con middlewares, rutas y manejo de errores.
func NewApp(deps RouterDeps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		BodyLimit:    deps.BodyLimit,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	if len(deps.OpenAPI) > 0 {
		app.Use(swagger.New(swagger.Config{
			BasePath:    "/",
			FilePath:    "swagger.json",
			FileContent: deps.OpenAPI,
			Path:        "docs",
			Title:       deps.AppName,
		}))
	}

	Router(app, deps)
	app.Use(NotFound)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	system := NewSystemHandler(deps.Version, deps.StartedAt)
	app.Get("/", system.Root)
	app.Get("/health", system.Health)

	api := app.Group("/api/v1")

	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
