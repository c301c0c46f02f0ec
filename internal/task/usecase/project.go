package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Projects(ctx context.Context) ([]model.Project, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Sections lists all sections, or those of projectRef when given.
func (uc *implUseCase) Sections(ctx context.Context, projectRef string) ([]model.Section, error) {
	var projectID string
	if projectRef != "" {
		p, err := uc.resolver.ResolveProject(ctx, projectRef)
		if err != nil {
			return nil, err
		}
		projectID = p.ID
	}
	sections, err := uc.repo.ListSections(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

func (uc *implUseCase) Labels(ctx context.Context) ([]model.Label, error) {
	labels, err := uc.repo.ListLabels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	return labels, nil
}

func (uc *implUseCase) AddProject(ctx context.Context, input task.AddProjectInput) (model.Project, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Project{}, task.ErrEmptyName
	}

	opt := repository.CreateProjectOptions{
		Name:       name,
		Color:      input.Color,
		IsFavorite: input.Favorite,
	}
	if input.ParentRef != "" {
		parent, err := uc.resolver.ResolveProject(ctx, input.ParentRef)
		if err != nil {
			return model.Project{}, err
		}
		opt.ParentID = parent.ID
	}

	p, err := uc.repo.CreateProject(ctx, opt)
	if err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (uc *implUseCase) AddSection(ctx context.Context, input task.AddSectionInput) (model.Section, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Section{}, task.ErrEmptyName
	}

	p, err := uc.resolver.ResolveProject(ctx, input.ProjectRef)
	if err != nil {
		return model.Section{}, err
	}

	s, err := uc.repo.CreateSection(ctx, repository.CreateSectionOptions{Name: name, ProjectID: p.ID})
	if err != nil {
		return model.Section{}, fmt.Errorf("create section: %w", err)
	}
	return s, nil
}
