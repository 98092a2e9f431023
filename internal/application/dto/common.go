package dto

// MessageResponse acuse de recibo de operaciones sin cuerpo (update, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP para toda respuesta no 2xx.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Path      string   `json:"path"`
	Method    string   `json:"method"`
	Required  []string `json:"required,omitempty"`
}

// HealthResponse salida de GET /health.
type HealthResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}

// RootResponse salida de GET /.
type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Endpoints map[string]string `json:"endpoints"`
}
