package usecase

import (
	"context"
	"errors"
	"fmt"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Complete(ctx context.Context, ref string) (model.Task, error) {
	return uc.applyToTask(ctx, ref, "complete", uc.repo.CloseTask)
}

// Reopen resolves ref like the other lifecycle verbs. Completed tasks are not served
// by the active-task endpoints, so a URL or id: reference that comes back not found
// is reopened by its id directly.
func (uc *implUseCase) Reopen(ctx context.Context, ref string) (model.Task, error) {
	t, err := uc.resolver.ResolveTask(ctx, ref)
	if err != nil {
		id, ok := resolver.DirectID(resolver.KindTask, ref)
		if !ok || !errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, err
		}
		return uc.reopenByID(ctx, id)
	}
	if err := uc.repo.ReopenTask(ctx, t.ID); err != nil {
		return model.Task{}, fmt.Errorf("reopen task %s: %w", t.ID, err)
	}
	uc.l.Infof(ctx, "task.usecase.reopen: %s", t.ID)
	return t, nil
}

func (uc *implUseCase) reopenByID(ctx context.Context, id string) (model.Task, error) {
	if err := uc.repo.ReopenTask(ctx, id); err != nil {
		return model.Task{}, fmt.Errorf("reopen task %s: %w", id, err)
	}
	uc.l.Infof(ctx, "task.usecase.reopen: %s (completed)", id)

	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.reopen: reload %s: %v", id, err)
		return model.Task{ID: id}, nil
	}
	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, ref string) (model.Task, error) {
	return uc.applyToTask(ctx, ref, "delete", uc.repo.DeleteTask)
}

// applyToTask resolves ref and runs op on its id. The task is returned as it was before op.
func (uc *implUseCase) applyToTask(ctx context.Context, ref, verb string, op func(context.Context, string) error) (model.Task, error) {
	t, err := uc.resolver.ResolveTask(ctx, ref)
	if err != nil {
		return model.Task{}, err
	}
	if err := op(ctx, t.ID); err != nil {
		return model.Task{}, fmt.Errorf("%s task %s: %w", verb, t.ID, err)
	}
	uc.l.Infof(ctx, "task.usecase.%s: %s", verb, t.ID)
	return t, nil
}
