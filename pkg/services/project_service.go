package services

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/project"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// ProjectService manages project lifecycle
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Slug == "" {
		return nil, NewValidationError("slug", "required")
	}

	builder := s.client.Project.Create().
		SetID(newID()).
		SetName(req.Name).
		SetSlug(req.Slug).
		SetDescription(req.Description)

	if req.RepoPath != "" {
		builder.SetRepoPath(req.RepoPath)
	}
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectBySlug retrieves a project by its stable external handle
func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	return p, nil
}

// ListProjects lists all projects, oldest first
func (s *ProjectService) ListProjects(ctx context.Context) (*models.ProjectListResponse, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectListResponse{
		Projects:   projects,
		TotalCount: len(projects),
	}, nil
}

// UpdateProject applies the provided partial update
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req models.UpdateProjectRequest) (*ent.Project, error) {
	update := s.client.Project.UpdateOneID(projectID)

	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.RepoPath != nil {
		if *req.RepoPath == "" {
			update.ClearRepoPath()
		} else {
			update.SetRepoPath(*req.RepoPath)
		}
	}
	if req.Status != nil {
		status := project.Status(*req.Status)
		if err := project.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
		update.SetStatus(status)
	}
	if req.Config != nil {
		update.SetConfig(req.Config)
	}

	p, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}

// DeleteProject removes a project and, via cascades, everything scoped to it
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	err := s.client.Project.DeleteOneID(projectID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
