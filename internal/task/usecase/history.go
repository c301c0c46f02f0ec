package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

// completedTimeLayout is the timestamp layout accepted by the completed-tasks endpoint.
const completedTimeLayout = "2006-01-02T15:04:05"

func (uc *implUseCase) Activity(ctx context.Context, input task.ActivityInput) ([]model.ActivityEvent, error) {
	events, err := uc.repo.ListActivity(ctx, repository.ListActivityOptions{
		Limit:      input.Limit,
		ObjectType: input.ObjectType,
		EventType:  input.EventType,
	})
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return events, nil
}

func (uc *implUseCase) Completed(ctx context.Context, input task.CompletedInput) ([]model.CompletedTask, error) {
	opt := repository.ListCompletedOptions{Limit: input.Limit}
	now := uc.now()

	if s := strings.TrimSpace(input.Since); s != "" {
		since, err := uc.dateMath.Parse(s, now)
		if err != nil {
			return nil, fmt.Errorf("%w: --since: %v", task.ErrInvalidDate, err)
		}
		opt.Since = since.Format(completedTimeLayout)
	}
	if s := strings.TrimSpace(input.Until); s != "" {
		until, err := uc.dateMath.Parse(s, now)
		if err != nil {
			return nil, fmt.Errorf("%w: --until: %v", task.ErrInvalidDate, err)
		}
		opt.Until = uc.dateMath.EndOfDay(until).Format(completedTimeLayout)
	}
	if input.ProjectRef != "" {
		p, err := uc.resolver.ResolveProject(ctx, input.ProjectRef)
		if err != nil {
			return nil, err
		}
		opt.ProjectID = p.ID
	}

	items, err := uc.repo.ListCompleted(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("list completed: %w", err)
	}
	return items, nil
}
