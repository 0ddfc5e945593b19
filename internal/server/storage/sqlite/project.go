package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/bugtrack/internal/models"
)

// CreateProject stores a new project
func (s *Storage) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, title, description, creator, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Creator,
		project.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert project: %w", err)
	}

	return nil
}

// ListProjects returns all projects ordered by creation time
func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	query := `
		SELECT id, title, description, creator, created_at
		FROM projects
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Creator,
			&project.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}
