package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	if input.Empty() {
		return model.Task{}, task.ErrNothingToUpdate
	}
	if input.Content != nil && strings.TrimSpace(*input.Content) == "" {
		return model.Task{}, task.ErrEmptyContent
	}
	if input.Priority != nil && !validPriority(*input.Priority) {
		return model.Task{}, task.ErrInvalidPriority
	}

	t, err := uc.resolver.ResolveTask(ctx, input.Ref)
	if err != nil {
		return model.Task{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, t.ID, repository.UpdateTaskOptions{
		Content:     input.Content,
		Description: input.Description,
		Priority:    input.Priority,
		DueString:   input.Due,
		Deadline:    input.Deadline,
		Labels:      input.Labels,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("update task %s: %w", t.ID, err)
	}
	return updated, nil
}
