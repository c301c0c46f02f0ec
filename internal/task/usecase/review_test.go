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

func TestReview(t *testing.T) {
	ctx := context.Background()

	dueToday := model.Task{ID: "t1", Content: "Due today", ProjectID: "p-work", Due: &model.Due{Date: "2026-10-15"}}
	dueYesterday := model.Task{ID: "t2", Content: "Due yesterday", ProjectID: "p-work", Due: &model.Due{Date: "2026-10-14"}}
	lateLastNight := model.Task{ID: "t3", Content: "Timed yesterday", ProjectID: "p-home", Due: &model.Due{Datetime: "2026-10-14T23:30:00Z"}}
	floatingInbox := model.Task{ID: "t4", Content: "Unsorted", ProjectID: "p-inbox"}
	recurringOnly := model.Task{ID: "t5", Content: "Water plants", ProjectID: "p-home", Due: &model.Due{String: "every day", IsRecurring: true}}
	future := model.Task{ID: "t6", Content: "Next week", ProjectID: "p-inbox", Due: &model.Due{Date: "2026-10-22"}}

	all := []model.Task{dueToday, dueYesterday, lateLastNight, floatingInbox, recurringOnly, future}

	t.Run("Partitions", func(t *testing.T) {
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			ListTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) {
				if opt.Filter == task.TodayFilter {
					return []model.Task{dueToday, dueYesterday}, nil
				}
				return all, nil
			},
		}
		out, err := newUseCase(t, fake).Review(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Today) != 2 {
			t.Errorf("expected 2 today tasks, got %d", len(out.Today))
		}

		overdue := ids(out.Overdue)
		if len(overdue) != 2 || overdue[0] != "t2" || overdue[1] != "t3" {
			t.Errorf("expected overdue [t2 t3], got %v", overdue)
		}

		inbox := ids(out.Inbox)
		if len(inbox) != 2 || inbox[0] != "t4" || inbox[1] != "t6" {
			t.Errorf("expected inbox [t4 t6], got %v", inbox)
		}

		// recurringOnly has a due string, so it is not floating.
		if out.FloatingCount != 1 {
			t.Errorf("expected 1 floating task, got %d", out.FloatingCount)
		}

		if len(out.Projects) != 2 {
			t.Fatalf("expected 2 non-inbox projects, got %+v", out.Projects)
		}
		want := map[string]int{"p-work": 2, "p-home": 2}
		for _, pc := range out.Projects {
			if pc.Project.IsInbox {
				t.Errorf("inbox must not be counted")
			}
			if pc.TaskCount != want[pc.Project.ID] {
				t.Errorf("%s: expected %d tasks, got %d", pc.Project.ID, want[pc.Project.ID], pc.TaskCount)
			}
		}
	})

	t.Run("Fetch Failure Aborts", func(t *testing.T) {
		remote := errors.New("timeout")
		fake := &repotest.Fake{
			ListProjectsFunc: func() ([]model.Project, error) { return nil, remote },
			ListTasksFunc:    func(repository.ListTasksOptions) ([]model.Task, error) { return all, nil },
		}
		_, err := newUseCase(t, fake).Review(ctx)
		if !errors.Is(err, remote) {
			t.Fatalf("expected remote error, got %v", err)
		}
	})

	t.Run("Empty Account", func(t *testing.T) {
		fake := &repotest.Fake{
			ListProjectsFunc: func() ([]model.Project, error) { return []model.Project{projInbox}, nil },
			ListTasksFunc:    func(repository.ListTasksOptions) ([]model.Task, error) { return nil, nil },
		}
		out, err := newUseCase(t, fake).Review(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Inbox == nil || out.Overdue == nil || out.Projects == nil {
			t.Errorf("partitions should be empty, not nil: %+v", out)
		}
	})
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
