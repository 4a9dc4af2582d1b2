// Package models contains request/response models and business domain types.
package models

import "github.com/codeready-toolchain/agentloop/ent"

// CreateProjectRequest contains fields for creating a project
type CreateProjectRequest struct {
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	RepoPath    string         `json:"repo_path,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// UpdateProjectRequest contains updatable project fields
type UpdateProjectRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	RepoPath    *string        `json:"repo_path,omitempty"`
	Status      *string        `json:"status,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

// ProjectListResponse contains a project list
type ProjectListResponse struct {
	Projects   []*ent.Project `json:"projects"`
	TotalCount int            `json:"total_count"`
}
