package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
)

// SystemHandler expone las rutas de estado del servicio.
type SystemHandler struct {
	version   string
	startedAt time.Time
	now       func() time.Time
}

// NewSystemHandler construye el handler; startedAt es el instante de arranque del proceso.
func NewSystemHandler(version string, startedAt time.Time) *SystemHandler {
	return &SystemHandler{version: version, startedAt: startedAt, now: time.Now}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	now := h.now()
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Message:   "User CRUD API is running",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	})
}

// Root godoc
// @Summary      Bienvenida
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.RootResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message:   "Welcome to User CRUD API",
		Version:   h.version,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Endpoints: map[string]string{
			"users":  "/api/v1/users",
			"health": "/health",
		},
	})
}
