package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Reminders(ctx context.Context, ref string) (task.RemindersOutput, error) {
	t, err := uc.resolver.ResolveTask(ctx, ref)
	if err != nil {
		return task.RemindersOutput{}, err
	}
	reminders, err := uc.repo.ListReminders(ctx, t.ID)
	if err != nil {
		return task.RemindersOutput{}, fmt.Errorf("list reminders: %w", err)
	}
	return task.RemindersOutput{Task: t, Reminders: reminders}, nil
}

// AddReminder rejects a relative reminder on a task without a due value.
func (uc *implUseCase) AddReminder(ctx context.Context, input task.AddReminderInput) (task.AddReminderOutput, error) {
	at := strings.TrimSpace(input.At)
	if (input.BeforeMinutes == nil) == (at == "") {
		return task.AddReminderOutput{}, task.ErrReminderTrigger
	}

	t, err := uc.resolver.ResolveTask(ctx, input.Ref)
	if err != nil {
		return task.AddReminderOutput{}, err
	}
	if input.BeforeMinutes != nil && !t.HasDue() {
		return task.AddReminderOutput{}, fmt.Errorf("%w: %q needs a due date before a relative reminder can be set", task.ErrTaskHasNoDue, t.Content)
	}

	r, err := uc.repo.AddReminder(ctx, repository.AddReminderOptions{
		TaskID:       t.ID,
		MinuteOffset: input.BeforeMinutes,
		DueDatetime:  at,
	})
	if err != nil {
		return task.AddReminderOutput{}, fmt.Errorf("add reminder: %w", err)
	}
	return task.AddReminderOutput{Task: t, Reminder: r}, nil
}

func (uc *implUseCase) DeleteReminder(ctx context.Context, id string) error {
	if err := uc.repo.DeleteReminder(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete reminder %s: %w", id, err)
	}
	return nil
}
