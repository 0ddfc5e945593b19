package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/bugtrack/internal/models"
	"github.com/iudanet/bugtrack/internal/server/storage"
	"github.com/iudanet/bugtrack/pkg/api"
)

// ProjectHandler обрабатывает маршруты проектов.
// Достижим только через auth middleware.
type ProjectHandler struct {
	logger   *slog.Logger
	projects storage.ProjectStorage
}

// NewProjectHandler создает новый handler проектов
func NewProjectHandler(logger *slog.Logger, projects storage.ProjectStorage) *ProjectHandler {
	return &ProjectHandler{
		logger:   logger,
		projects: projects,
	}
}

// CreateProject обрабатывает POST /createProject
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode project request", slog.Any("error", err))
		writeText(w, http.StatusBadRequest, "Invalid Request")
		return
	}

	// creator берется из верифицированных claims, не из заголовков
	creator, ok := GetEmail(ctx)
	if !ok {
		writeText(w, http.StatusUnauthorized, "No Token Found!")
		return
	}

	project := &models.Project{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Creator:     creator,
		CreatedAt:   time.Now(),
	}

	if err := h.projects.CreateProject(ctx, project); err != nil {
		h.logger.ErrorContext(ctx, "failed to create project", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	writeJSON(h.logger, w, http.StatusOK, "Succesfully Added a New Project")
}

// GetAllProjects обрабатывает GET /getAllProjects
func (h *ProjectHandler) GetAllProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.projects.ListProjects(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list projects", slog.Any("error", err))
		writeServerError(h.logger, w)
		return
	}

	if len(projects) == 0 {
		writeJSON(h.logger, w, http.StatusOK, "No Documents Found")
		return
	}

	writeJSON(h.logger, w, http.StatusOK, projects)
}
