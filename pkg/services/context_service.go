package services

import (
	"context"
	"fmt"
	"time"

	"github.com/codeready-toolchain/agentloop/ent"
	"github.com/codeready-toolchain/agentloop/ent/projectcontext"
	"github.com/codeready-toolchain/agentloop/pkg/models"
)

// ContextService manages persistent project knowledge entries
type ContextService struct {
	client *ent.Client
}

// NewContextService creates a new ContextService
func NewContextService(client *ent.Client) *ContextService {
	return &ContextService{client: client}
}

// Upsert writes a knowledge entry. An existing (project, category, key)
// entry has its content and source refs replaced and its recency refreshed.
func (s *ContextService) Upsert(ctx context.Context, req models.UpsertContextRequest) (*ent.ProjectContext, error) {
	if req.ProjectID == "" {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Category == "" {
		return nil, NewValidationError("category", "required")
	}
	if req.Key == "" {
		return nil, NewValidationError("key", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	builder := s.client.ProjectContext.Create().
		SetID(newID()).
		SetProjectID(req.ProjectID).
		SetCategory(req.Category).
		SetKey(req.Key).
		SetContent(req.Content)

	if req.SourceAgentID != "" {
		builder.SetSourceAgentID(req.SourceAgentID)
	}
	if req.SourceStepID != "" {
		builder.SetSourceStepID(req.SourceStepID)
	}

	err := builder.
		OnConflictColumns(
			projectcontext.FieldProjectID,
			projectcontext.FieldCategory,
			projectcontext.FieldKey,
		).
		Update(func(u *ent.ProjectContextUpsert) {
			u.SetContent(req.Content)
			u.SetUpdatedAt(time.Now())
			if req.SourceAgentID != "" {
				u.SetSourceAgentID(req.SourceAgentID)
			} else {
				u.ClearSourceAgentID()
			}
			if req.SourceStepID != "" {
				u.SetSourceStepID(req.SourceStepID)
			} else {
				u.ClearSourceStepID()
			}
		}).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound // project FK violated
		}
		return nil, fmt.Errorf("failed to upsert context entry: %w", err)
	}

	entry, err := s.client.ProjectContext.Query().
		Where(
			projectcontext.ProjectIDEQ(req.ProjectID),
			projectcontext.CategoryEQ(req.Category),
			projectcontext.KeyEQ(req.Key),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upserted entry: %w", err)
	}

	return entry, nil
}

// ListContext lists a project's knowledge entries, most recent first,
// optionally filtered by category.
func (s *ContextService) ListContext(ctx context.Context, projectID, category string) (*models.ContextListResponse, error) {
	query := s.client.ProjectContext.Query().
		Where(projectcontext.ProjectIDEQ(projectID))

	if category != "" {
		query = query.Where(projectcontext.CategoryEQ(category))
	}

	entries, err := query.
		Order(ent.Desc(projectcontext.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list context entries: %w", err)
	}

	return &models.ContextListResponse{Entries: entries}, nil
}

// ListRecent returns the most recently touched entries for prompt
// assembly, capped at limit.
func (s *ContextService) ListRecent(ctx context.Context, projectID string, limit int) ([]*ent.ProjectContext, error) {
	if limit <= 0 {
		limit = 20
	}

	entries, err := s.client.ProjectContext.Query().
		Where(projectcontext.ProjectIDEQ(projectID)).
		Order(ent.Desc(projectcontext.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent context entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes a knowledge entry
func (s *ContextService) DeleteEntry(ctx context.Context, entryID string) error {
	err := s.client.ProjectContext.DeleteOneID(entryID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete context entry: %w", err)
	}
	return nil
}
