package usecase_test

import (
	"context"
	"errors"
	"testing"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
	"todoist-agent-cli/internal/task/repository/repotest"
)

func TestAddReminder(t *testing.T) {
	ctx := context.Background()
	noDue := model.Task{ID: "1", Content: "Someday"}
	withDue := model.Task{ID: "2", Content: "Dentist", Due: &model.Due{Date: "2026-10-20", Datetime: "2026-10-20T09:00:00"}}

	byID := func(id string) (model.Task, error) {
		switch id {
		case "1":
			return noDue, nil
		case "2":
			return withDue, nil
		}
		return model.Task{}, repository.ErrNotFound
	}

	t.Run("Before On Task Without Due Is Rejected", func(t *testing.T) {
		fake := &repotest.Fake{GetTaskFunc: byID}
		_, err := newUseCase(t, fake).AddReminder(ctx, task.AddReminderInput{Ref: "id:1", BeforeMinutes: intPtr(30)})
		if !errors.Is(err, task.ErrTaskHasNoDue) {
			t.Fatalf("expected ErrTaskHasNoDue, got %v", err)
		}
		if fake.Called("AddReminder") {
			t.Errorf("reminder must not be created")
		}
	})

	t.Run("Before On Task With Due", func(t *testing.T) {
		var got repository.AddReminderOptions
		fake := &repotest.Fake{
			GetTaskFunc: byID,
			AddReminderFunc: func(opt repository.AddReminderOptions) (model.Reminder, error) {
				got = opt
				return model.Reminder{ID: "r1", TaskID: opt.TaskID, MinuteOffset: opt.MinuteOffset}, nil
			},
		}
		out, err := newUseCase(t, fake).AddReminder(ctx, task.AddReminderInput{Ref: "id:2", BeforeMinutes: intPtr(30)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TaskID != "2" || got.MinuteOffset == nil || *got.MinuteOffset != 30 || got.DueDatetime != "" {
			t.Errorf("unexpected options: %+v", got)
		}
		if out.Reminder.ID != "r1" || out.Task.ID != "2" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("Absolute Time On Task Without Due", func(t *testing.T) {
		var got repository.AddReminderOptions
		fake := &repotest.Fake{
			GetTaskFunc: byID,
			AddReminderFunc: func(opt repository.AddReminderOptions) (model.Reminder, error) {
				got = opt
				return model.Reminder{ID: "r2"}, nil
			},
		}
		if _, err := newUseCase(t, fake).AddReminder(ctx, task.AddReminderInput{Ref: "id:1", At: "2026-10-16T08:00:00"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.DueDatetime != "2026-10-16T08:00:00" || got.MinuteOffset != nil {
			t.Errorf("unexpected options: %+v", got)
		}
	})

	t.Run("Needs Exactly One Trigger", func(t *testing.T) {
		uc := newUseCase(t, &repotest.Fake{})
		for _, in := range []task.AddReminderInput{
			{Ref: "id:2"},
			{Ref: "id:2", BeforeMinutes: intPtr(10), At: "2026-10-16T08:00:00"},
		} {
			if _, err := uc.AddReminder(ctx, in); !errors.Is(err, task.ErrReminderTrigger) {
				t.Errorf("%+v: expected ErrReminderTrigger, got %v", in, err)
			}
		}
	})
}

func TestReminders(t *testing.T) {
	fake := &repotest.Fake{
		GetTaskFunc: func(id string) (model.Task, error) { return model.Task{ID: id}, nil },
		ListRemindersFunc: func(taskID string) ([]model.Reminder, error) {
			return []model.Reminder{{ID: "r1", TaskID: taskID}}, nil
		},
	}
	out, err := newUseCase(t, fake).Reminders(context.Background(), "id:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ID != "2" || len(out.Reminders) != 1 || out.Reminders[0].TaskID != "2" {
		t.Errorf("unexpected output: %+v", out)
	}
}
