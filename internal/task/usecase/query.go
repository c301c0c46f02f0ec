package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Today(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{Filter: task.TodayFilter})
	if err != nil {
		return nil, fmt.Errorf("list today: %w", err)
	}
	return tasks, nil
}

func (uc *implUseCase) Inbox(ctx context.Context) ([]model.Task, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	inbox, ok := findInbox(projects)
	if !ok {
		return nil, task.ErrInboxNotFound
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{ProjectID: inbox.ID})
	if err != nil {
		return nil, fmt.Errorf("list inbox: %w", err)
	}
	return tasks, nil
}

func (uc *implUseCase) Search(ctx context.Context, query string) ([]model.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, task.ErrEmptyQuery
	}
	tasks, err := uc.repo.SearchTasks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	uc.l.Debugf(ctx, "task.usecase.Search: %d results for %q", len(tasks), query)
	return tasks, nil
}

func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	opt := repository.ListTasksOptions{
		Label:  strings.TrimSpace(input.Label),
		Filter: strings.TrimSpace(input.Filter),
	}
	if input.ProjectRef != "" {
		p, err := uc.resolver.ResolveProject(ctx, input.ProjectRef)
		if err != nil {
			return nil, err
		}
		opt.ProjectID = p.ID
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (uc *implUseCase) Show(ctx context.Context, ref string) (model.Task, error) {
	return uc.resolver.ResolveTask(ctx, ref)
}

func findInbox(projects []model.Project) (model.Project, bool) {
	for _, p := range projects {
		if p.IsInbox {
			return p, true
		}
	}
	return model.Project{}, false
}
