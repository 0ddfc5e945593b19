package storage

import (
	"context"

	"github.com/iudanet/bugtrack/internal/models"
)

// ProjectStorage defines interface for project persistence
type ProjectStorage interface {
	// CreateProject stores a new project
	CreateProject(ctx context.Context, project *models.Project) error

	// ListProjects returns all projects ordered by creation time
	ListProjects(ctx context.Context) ([]*models.Project, error)
}
