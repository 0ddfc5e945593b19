package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/bugtrack/pkg/api"
)

// HealthHandler обрабатывает health check и служебные маршруты
type HealthHandler struct {
	logger  *slog.Logger
	db      *sql.DB
	env     string
	started time.Time
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db *sql.DB, env string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		db:      db,
		env:     env,
		started: time.Now(),
	}
}

// Root обрабатывает GET /
// Все остальные пути и методы падают в 404 здесь же
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		writeJSON(h.logger, w, http.StatusNotFound, map[string]any{
			"ok":      false,
			"message": "Route not found",
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<h1>Issue Tracker API</h1>
<p>Try: <a href="/pingServer">/pingServer</a> or <a href="/health">/health</a></p>`))
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbState := "connected"
	if err := h.db.PingContext(r.Context()); err != nil {
		dbState = "disconnected"
	}

	writeJSON(h.logger, w, http.StatusOK, api.HealthResponse{
		OK:     true,
		Uptime: time.Since(h.started).Seconds(),
		DB:     dbState,
		Env:    h.env,
	})
}

// Ping обрабатывает GET /pingServer
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Server Is Up!")
}
