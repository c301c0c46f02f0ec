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

func TestCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("Relative Range", func(t *testing.T) {
		var got repository.ListCompletedOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			ListCompletedFunc: func(opt repository.ListCompletedOptions) ([]model.CompletedTask, error) {
				got = opt
				return []model.CompletedTask{{ID: "c1"}}, nil
			},
		}
		out, err := newUseCase(t, fake).Completed(ctx, task.CompletedInput{
			Since:      "yesterday",
			Until:      "today",
			ProjectRef: "Work",
			Limit:      10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Errorf("expected 1 item, got %d", len(out))
		}
		if got.Since != "2026-10-14T00:00:00" || got.Until != "2026-10-15T23:59:59" {
			t.Errorf("unexpected range: %q .. %q", got.Since, got.Until)
		}
		if got.ProjectID != "p-work" || got.Limit != 10 {
			t.Errorf("unexpected options: %+v", got)
		}
	})

	t.Run("Invalid Date", func(t *testing.T) {
		fake := &repotest.Fake{}
		_, err := newUseCase(t, fake).Completed(ctx, task.CompletedInput{Since: "last full moon"})
		if !errors.Is(err, task.ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
		if fake.Called("ListCompleted") {
			t.Errorf("must not call the service with a bad date")
		}
	})
}

func TestActivity(t *testing.T) {
	var got repository.ListActivityOptions
	fake := &repotest.Fake{
		ListActivityFunc: func(opt repository.ListActivityOptions) ([]model.ActivityEvent, error) {
			got = opt
			return nil, nil
		},
	}
	_, err := newUseCase(t, fake).Activity(context.Background(), task.ActivityInput{Limit: 5, ObjectType: "item", EventType: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Limit != 5 || got.ObjectType != "item" || got.EventType != "completed" {
		t.Errorf("unexpected options: %+v", got)
	}
}
