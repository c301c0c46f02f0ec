package usecase

import (
	"context"
	"fmt"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

// Move relocates a task and returns it as stored after the move.
func (uc *implUseCase) Move(ctx context.Context, input task.MoveInput) (model.Task, error) {
	set := 0
	for _, v := range []string{input.ProjectRef, input.SectionID, input.ParentRef} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return model.Task{}, task.ErrMoveDestination
	}

	t, err := uc.resolver.ResolveTask(ctx, input.Ref)
	if err != nil {
		return model.Task{}, err
	}

	var opt repository.MoveTaskOptions
	switch {
	case input.ProjectRef != "":
		p, err := uc.resolver.ResolveProject(ctx, input.ProjectRef)
		if err != nil {
			return model.Task{}, err
		}
		opt.ProjectID = p.ID
	case input.ParentRef != "":
		parent, err := uc.resolver.ResolveTask(ctx, input.ParentRef)
		if err != nil {
			return model.Task{}, err
		}
		opt.ParentID = parent.ID
	default:
		opt.SectionID = input.SectionID
	}

	if err := uc.repo.MoveTask(ctx, t.ID, opt); err != nil {
		return model.Task{}, fmt.Errorf("move task %s: %w", t.ID, err)
	}

	moved, err := uc.repo.GetTask(ctx, t.ID)
	if err != nil {
		return model.Task{}, fmt.Errorf("reload task %s: %w", t.ID, err)
	}
	return moved, nil
}
