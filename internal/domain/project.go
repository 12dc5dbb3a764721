package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project groups environments and carries the requirements new prompts are checked against.
type Project struct {
	ID           uuid.UUID
	Name         string
	Requirements string
	Focus        *string
	CreatedAt    time.Time
}

// Validate checks the project fields before it is persisted.
func (p Project) Validate() error {
	if p.Name == "" {
		return NewValidationErr("project name cannot be empty")
	}
	if len(p.Name) > 200 {
		return NewValidationErr("project name must be at most 200 characters")
	}
	return nil
}

// HasRequirements reports whether requirement analysis should run for prompts in this project.
func (p Project) HasRequirements() bool {
	return strings.TrimSpace(p.Requirements) != ""
}

// ProjectUpdate holds a partial project update. Nil fields are left untouched and an empty
// Focus clears it.
type ProjectUpdate struct {
	Requirements *string
	Focus        *string
}

// Environment is a named partition of a project. Its ID is the scope id prompts are stored under.
type Environment struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	ProjectName string
	Name        string
	CreatedAt   time.Time
}

// Validate checks the environment fields before it is persisted.
func (e Environment) Validate() error {
	if e.Name == "" {
		return NewValidationErr("environment name cannot be empty")
	}
	if len(e.Name) > 200 {
		return NewValidationErr("environment name must be at most 200 characters")
	}
	return nil
}

// NormalizeName lowercases and trims a project or environment name.
// Names are compared and stored in this form.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ProjectRepository defines the persistence operations for projects.
type ProjectRepository interface {
	// UpsertProject creates the project or overwrites requirements and focus of an existing
	// project with the same name. It returns the id of the stored project.
	UpsertProject(ctx context.Context, project Project) (uuid.UUID, error)
	// UpdateProject applies a partial update. It reports false when the project does not exist.
	UpdateProject(ctx context.Context, name string, update ProjectUpdate) (bool, error)
	// GetProject retrieves a project by its normalized name.
	GetProject(ctx context.Context, name string) (Project, bool, error)
	// ListProjects lists all projects ordered by name.
	ListProjects(ctx context.Context) ([]Project, error)
	// DeleteProject deletes a project and, by cascade, its environments and prompts.
	DeleteProject(ctx context.Context, name string) (bool, error)
}

// EnvironmentRepository defines the persistence operations for environments.
type EnvironmentRepository interface {
	// CreateEnvironment inserts the environment or returns the id of the existing one with
	// the same (project, name).
	CreateEnvironment(ctx context.Context, env Environment) (uuid.UUID, error)
	// GetEnvironment retrieves an environment by project and environment names.
	GetEnvironment(ctx context.Context, projectName, name string) (Environment, bool, error)
	// ListEnvironments lists the environments of a project ordered by name.
	ListEnvironments(ctx context.Context, projectID uuid.UUID) ([]Environment, error)
	// DeleteEnvironment deletes an environment and, by cascade, its prompts.
	DeleteEnvironment(ctx context.Context, projectName, name string) (bool, error)
}
