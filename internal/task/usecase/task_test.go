package usecase_test

import (
	"context"
	"errors"
	"testing"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
	"todoist-agent-cli/internal/task/repository/repotest"
)

var (
	projInbox = model.Project{ID: "p-inbox", Name: "Inbox", IsInbox: true}
	projWork  = model.Project{ID: "p-work", Name: "Work"}
	projHome  = model.Project{ID: "p-home", Name: "Home"}
)

func listProjects() ([]model.Project, error) {
	return []model.Project{projInbox, projWork, projHome}, nil
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Priority Stored Verbatim", func(t *testing.T) {
		var got repository.CreateTaskOptions
		fake := &repotest.Fake{
			CreateTaskFunc: func(opt repository.CreateTaskOptions) (model.Task, error) {
				got = opt
				return model.Task{ID: "1", Content: opt.Content, Priority: opt.Priority}, nil
			},
		}
		out, err := newUseCase(t, fake).Add(ctx, task.AddInput{Content: "Ship it", Priority: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Priority != 2 || out.Priority != 2 {
			t.Errorf("expected priority 2, sent %d, got %d", got.Priority, out.Priority)
		}
	})

	t.Run("Resolves Project And Parent", func(t *testing.T) {
		var got repository.CreateTaskOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			SearchTasksFunc: func(string) ([]model.Task, error) {
				return []model.Task{{ID: "t-parent", Content: "Quarterly report"}}, nil
			},
			CreateTaskFunc: func(opt repository.CreateTaskOptions) (model.Task, error) {
				got = opt
				return model.Task{ID: "2"}, nil
			},
		}
		_, err := newUseCase(t, fake).Add(ctx, task.AddInput{
			Content:    "Draft intro",
			ProjectRef: "work",
			ParentRef:  "quarterly",
			Labels:     []string{"writing"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-work" || got.ParentID != "t-parent" {
			t.Errorf("unexpected ids: %+v", got)
		}
		if len(got.Labels) != 1 || got.Labels[0] != "writing" {
			t.Errorf("labels not forwarded: %v", got.Labels)
		}
	})

	t.Run("Empty Content", func(t *testing.T) {
		fake := &repotest.Fake{}
		_, err := newUseCase(t, fake).Add(ctx, task.AddInput{Content: "  "})
		if !errors.Is(err, task.ErrEmptyContent) {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
		if len(fake.Calls()) != 0 {
			t.Errorf("expected no remote calls, got %v", fake.Calls())
		}
	})

	t.Run("Invalid Priority", func(t *testing.T) {
		_, err := newUseCase(t, &repotest.Fake{}).Add(ctx, task.AddInput{Content: "x", Priority: 5})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("Unresolvable Project Stops Before Create", func(t *testing.T) {
		fake := &repotest.Fake{ListProjectsFunc: listProjects}
		_, err := newUseCase(t, fake).Add(ctx, task.AddInput{Content: "x", ProjectRef: "garden"})
		var nf *resolver.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if fake.Called("CreateTask") {
			t.Errorf("task must not be created")
		}
	})
}

func TestLifecycle(t *testing.T) {
	ctx := context.Background()
	milk := model.Task{ID: "101", Content: "Buy milk"}

	search := func(string) ([]model.Task, error) { return []model.Task{milk}, nil }

	t.Run("Complete Closes Resolved Task", func(t *testing.T) {
		var closed string
		fake := &repotest.Fake{
			SearchTasksFunc: search,
			CloseTaskFunc:   func(id string) error { closed = id; return nil },
		}
		out, err := newUseCase(t, fake).Complete(ctx, "buy milk")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != "101" || out.ID != "101" {
			t.Errorf("expected 101 closed, got %q / %q", closed, out.ID)
		}
	})

	t.Run("Reopen Uses Explicit ID", func(t *testing.T) {
		var reopened string
		fake := &repotest.Fake{
			GetTaskFunc:    func(id string) (model.Task, error) { return model.Task{ID: id}, nil },
			ReopenTaskFunc: func(id string) error { reopened = id; return nil },
		}
		if _, err := newUseCase(t, fake).Reopen(ctx, "id:555"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reopened != "555" {
			t.Errorf("expected 555 reopened, got %q", reopened)
		}
	})

	t.Run("Reopen Completed Task By Explicit ID", func(t *testing.T) {
		closed := true
		fake := &repotest.Fake{
			GetTaskFunc: func(id string) (model.Task, error) {
				if closed {
					return model.Task{}, repository.ErrNotFound
				}
				return model.Task{ID: id, Content: "Buy milk"}, nil
			},
			ReopenTaskFunc: func(id string) error {
				if id != "101" {
					t.Errorf("unexpected reopen of %q", id)
				}
				closed = false
				return nil
			},
		}
		out, err := newUseCase(t, fake).Reopen(ctx, "id:101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != "101" || out.Content != "Buy milk" {
			t.Errorf("expected reloaded task, got %+v", out)
		}
	})

	t.Run("Reopen Completed Task By URL", func(t *testing.T) {
		var reopened string
		fake := &repotest.Fake{
			GetTaskFunc: func(string) (model.Task, error) {
				if reopened == "" {
					return model.Task{}, repository.ErrNotFound
				}
				return model.Task{}, errors.New("timeout")
			},
			ReopenTaskFunc: func(id string) error { reopened = id; return nil },
		}
		out, err := newUseCase(t, fake).Reopen(ctx, "https://app.todoist.com/app/task/buy-milk-101")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reopened != "101" || out.ID != "101" {
			t.Errorf("expected 101 reopened, got %q / %q", reopened, out.ID)
		}
	})

	t.Run("Reopen By Name Does Not Guess", func(t *testing.T) {
		fake := &repotest.Fake{
			SearchTasksFunc: func(string) ([]model.Task, error) { return nil, nil },
		}
		_, err := newUseCase(t, fake).Reopen(ctx, "buy milk")
		var nf *resolver.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
		if fake.Called("ReopenTask") {
			t.Errorf("nothing may be reopened")
		}
	})

	t.Run("Reopen Transport Failure Is Not Retried By ID", func(t *testing.T) {
		fake := &repotest.Fake{
			GetTaskFunc: func(string) (model.Task, error) { return model.Task{}, errors.New("connection refused") },
		}
		if _, err := newUseCase(t, fake).Reopen(ctx, "id:101"); err == nil {
			t.Fatalf("expected error")
		}
		if fake.Called("ReopenTask") {
			t.Errorf("nothing may be reopened")
		}
	})

	t.Run("Delete Failure Is Wrapped", func(t *testing.T) {
		remote := errors.New("503 service unavailable")
		fake := &repotest.Fake{
			SearchTasksFunc: search,
			DeleteTaskFunc:  func(string) error { return remote },
		}
		_, err := newUseCase(t, fake).Delete(ctx, "Buy milk")
		if !errors.Is(err, remote) {
			t.Fatalf("expected wrapped remote error, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Nothing To Update", func(t *testing.T) {
		_, err := newUseCase(t, &repotest.Fake{}).Update(ctx, task.UpdateInput{Ref: "x"})
		if !errors.Is(err, task.ErrNothingToUpdate) {
			t.Fatalf("expected ErrNothingToUpdate, got %v", err)
		}
	})

	t.Run("Forwards Only Set Fields", func(t *testing.T) {
		var got repository.UpdateTaskOptions
		fake := &repotest.Fake{
			GetTaskFunc: func(id string) (model.Task, error) { return model.Task{ID: id}, nil },
			UpdateTaskFunc: func(id string, opt repository.UpdateTaskOptions) (model.Task, error) {
				got = opt
				return model.Task{ID: id, Priority: *opt.Priority}, nil
			},
		}
		out, err := newUseCase(t, fake).Update(ctx, task.UpdateInput{Ref: "id:9", Priority: intPtr(3), Labels: []string{}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Priority != 3 || got.Content != nil || got.DueString != nil {
			t.Errorf("unexpected update: %+v", got)
		}
		if got.Labels == nil || len(got.Labels) != 0 {
			t.Errorf("expected empty non-nil labels to clear, got %#v", got.Labels)
		}
	})

	t.Run("Blank Content Rejected", func(t *testing.T) {
		_, err := newUseCase(t, &repotest.Fake{}).Update(ctx, task.UpdateInput{Ref: "x", Content: strPtr(" ")})
		if !errors.Is(err, task.ErrEmptyContent) {
			t.Fatalf("expected ErrEmptyContent, got %v", err)
		}
	})
}

func TestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Requires Exactly One Destination", func(t *testing.T) {
		uc := newUseCase(t, &repotest.Fake{})
		for _, in := range []task.MoveInput{
			{Ref: "x"},
			{Ref: "x", ProjectRef: "work", SectionID: "7"},
		} {
			if _, err := uc.Move(ctx, in); !errors.Is(err, task.ErrMoveDestination) {
				t.Errorf("%+v: expected ErrMoveDestination, got %v", in, err)
			}
		}
	})

	t.Run("Move To Project Reloads Task", func(t *testing.T) {
		var got repository.MoveTaskOptions
		moved := false
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			GetTaskFunc: func(id string) (model.Task, error) {
				if moved {
					return model.Task{ID: id, ProjectID: "p-home"}, nil
				}
				return model.Task{ID: id, ProjectID: "p-work"}, nil
			},
			MoveTaskFunc: func(id string, opt repository.MoveTaskOptions) error {
				got, moved = opt, true
				return nil
			},
		}
		out, err := newUseCase(t, fake).Move(ctx, task.MoveInput{Ref: "id:42", ProjectRef: "Home"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-home" || got.SectionID != "" || got.ParentID != "" {
			t.Errorf("unexpected move options: %+v", got)
		}
		if out.ProjectID != "p-home" {
			t.Errorf("expected reloaded task in p-home, got %+v", out)
		}
	})

	t.Run("Move To Section Uses Raw ID", func(t *testing.T) {
		var got repository.MoveTaskOptions
		fake := &repotest.Fake{
			GetTaskFunc:  func(id string) (model.Task, error) { return model.Task{ID: id}, nil },
			MoveTaskFunc: func(_ string, opt repository.MoveTaskOptions) error { got = opt; return nil },
		}
		if _, err := newUseCase(t, fake).Move(ctx, task.MoveInput{Ref: "id:42", SectionID: "s-7"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.SectionID != "s-7" {
			t.Errorf("expected section s-7, got %+v", got)
		}
	})
}

func TestQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("Today Uses Filter", func(t *testing.T) {
		var got repository.ListTasksOptions
		fake := &repotest.Fake{
			ListTasksFunc: func(opt repository.ListTasksOptions) ([]model.Task, error) { got = opt; return nil, nil },
		}
		if _, err := newUseCase(t, fake).Today(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Filter != task.TodayFilter {
			t.Errorf("expected filter %q, got %q", task.TodayFilter, got.Filter)
		}
	})

	t.Run("Inbox Lists Inbox Project", func(t *testing.T) {
		var got repository.ListTasksOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			ListTasksFunc:    func(opt repository.ListTasksOptions) ([]model.Task, error) { got = opt; return nil, nil },
		}
		if _, err := newUseCase(t, fake).Inbox(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-inbox" {
			t.Errorf("expected inbox project, got %+v", got)
		}
	})

	t.Run("Inbox Missing", func(t *testing.T) {
		fake := &repotest.Fake{ListProjectsFunc: func() ([]model.Project, error) { return []model.Project{projWork}, nil }}
		if _, err := newUseCase(t, fake).Inbox(ctx); !errors.Is(err, task.ErrInboxNotFound) {
			t.Fatalf("expected ErrInboxNotFound, got %v", err)
		}
	})

	t.Run("Empty Search", func(t *testing.T) {
		if _, err := newUseCase(t, &repotest.Fake{}).Search(ctx, " "); !errors.Is(err, task.ErrEmptyQuery) {
			t.Fatalf("expected ErrEmptyQuery, got %v", err)
		}
	})

	t.Run("List By Project Ref And Label", func(t *testing.T) {
		var got repository.ListTasksOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			ListTasksFunc:    func(opt repository.ListTasksOptions) ([]model.Task, error) { got = opt; return nil, nil },
		}
		if _, err := newUseCase(t, fake).List(ctx, task.ListInput{ProjectRef: "work", Label: "urgent"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-work" || got.Label != "urgent" {
			t.Errorf("unexpected list options: %+v", got)
		}
	})
}
