package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpdateProject defines the interface for the UpdateProject use case.
type UpdateProject interface {
	// Execute applies a partial update and returns the stored project.
	Execute(ctx context.Context, name string, update domain.ProjectUpdate) (domain.Project, error)
}

// UpdateProjectImpl is the implementation of the UpdateProject use case.
type UpdateProjectImpl struct {
	uow domain.UnitOfWork
}

// NewUpdateProjectImpl creates a new instance of UpdateProjectImpl.
func NewUpdateProjectImpl(uow domain.UnitOfWork) UpdateProjectImpl {
	return UpdateProjectImpl{uow: uow}
}

// Execute updates requirements and focus of an existing project. Nil fields are left untouched
// and an empty focus clears it.
func (up UpdateProjectImpl) Execute(ctx context.Context, name string, update domain.ProjectUpdate) (domain.Project, error) {
	name = domain.NormalizeName(name)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", name),
	))
	defer span.End()

	if update.Requirements != nil {
		r := strings.TrimSpace(*update.Requirements)
		update.Requirements = &r
	}
	if update.Focus != nil {
		f := strings.TrimSpace(*update.Focus)
		update.Focus = &f
	}

	var project domain.Project
	err := up.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		updated, err := uow.Project().UpdateProject(spanCtx, name, update)
		if err != nil {
			return err
		}
		if !updated {
			return domain.NewNotFoundErr(fmt.Sprintf("project '%s' not found", name))
		}
		p, found, err := uow.Project().GetProject(spanCtx, name)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr(fmt.Sprintf("project '%s' not found", name))
		}
		project = p
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	return project, nil
}

// InitUpdateProject initializes the UpdateProject use case and registers it in the dependency container.
type InitUpdateProject struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize registers the UpdateProject use case in the dependency container.
func (iup InitUpdateProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateProject](NewUpdateProjectImpl(iup.Uow))
	return ctx, nil
}
