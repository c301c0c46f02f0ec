package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return model.Task{}, task.ErrEmptyContent
	}
	if input.Priority != 0 && !validPriority(input.Priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	opt := repository.CreateTaskOptions{
		Content:     content,
		Description: input.Description,
		Priority:    input.Priority,
		DueString:   input.Due,
		Deadline:    input.Deadline,
		Labels:      input.Labels,
		SectionID:   input.SectionID,
	}

	if input.ProjectRef != "" {
		p, err := uc.resolver.ResolveProject(ctx, input.ProjectRef)
		if err != nil {
			return model.Task{}, err
		}
		opt.ProjectID = p.ID
	}
	if input.ParentRef != "" {
		parent, err := uc.resolver.ResolveTask(ctx, input.ParentRef)
		if err != nil {
			return model.Task{}, err
		}
		opt.ParentID = parent.ID
	}

	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	uc.l.Infof(ctx, "task.usecase.Add: created %s", t.ID)
	return t, nil
}

func validPriority(p int) bool {
	return p >= model.DefaultPriority && p <= model.HighestPriority
}
