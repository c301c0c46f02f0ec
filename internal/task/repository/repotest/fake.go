// Package repotest provides a function-field fake of repository.Repository for tests.
package repotest

import (
	"context"
	"errors"
	"sync"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task/repository"
)

// ErrNotStubbed is returned by every method whose func field is nil.
var ErrNotStubbed = errors.New("repotest: method not stubbed")

// Fake records calls by method name and delegates to the matching func field.
type Fake struct {
	mu    sync.Mutex
	calls []string

	GetTaskFunc     func(id string) (model.Task, error)
	ListTasksFunc   func(opt repository.ListTasksOptions) ([]model.Task, error)
	SearchTasksFunc func(query string) ([]model.Task, error)
	CreateTaskFunc  func(opt repository.CreateTaskOptions) (model.Task, error)
	UpdateTaskFunc  func(id string, opt repository.UpdateTaskOptions) (model.Task, error)
	CloseTaskFunc   func(id string) error
	ReopenTaskFunc  func(id string) error
	DeleteTaskFunc  func(id string) error
	MoveTaskFunc    func(id string, opt repository.MoveTaskOptions) error

	GetProjectFunc    func(id string) (model.Project, error)
	ListProjectsFunc  func() ([]model.Project, error)
	CreateProjectFunc func(opt repository.CreateProjectOptions) (model.Project, error)
	ListSectionsFunc  func(projectID string) ([]model.Section, error)
	CreateSectionFunc func(opt repository.CreateSectionOptions) (model.Section, error)
	ListLabelsFunc    func() ([]model.Label, error)

	ListCommentsFunc  func(opt repository.ListCommentsOptions) ([]model.Comment, error)
	CreateCommentFunc func(opt repository.CreateCommentOptions) (model.Comment, error)
	UpdateCommentFunc func(id, content string) (model.Comment, error)
	DeleteCommentFunc func(id string) error

	ListRemindersFunc  func(taskID string) ([]model.Reminder, error)
	AddReminderFunc    func(opt repository.AddReminderOptions) (model.Reminder, error)
	DeleteReminderFunc func(id string) error

	ListActivityFunc  func(opt repository.ListActivityOptions) ([]model.ActivityEvent, error)
	ListCompletedFunc func(opt repository.ListCompletedOptions) ([]model.CompletedTask, error)
}

var _ repository.Repository = (*Fake)(nil)

func (f *Fake) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

// Calls returns the method names invoked so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether the named method was invoked.
func (f *Fake) Called(name string) bool {
	for _, c := range f.Calls() {
		if c == name {
			return true
		}
	}
	return false
}

func (f *Fake) GetTask(_ context.Context, id string) (model.Task, error) {
	f.record("GetTask")
	if f.GetTaskFunc == nil {
		return model.Task{}, ErrNotStubbed
	}
	return f.GetTaskFunc(id)
}

func (f *Fake) ListTasks(_ context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	f.record("ListTasks")
	if f.ListTasksFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListTasksFunc(opt)
}

func (f *Fake) SearchTasks(_ context.Context, query string) ([]model.Task, error) {
	f.record("SearchTasks")
	if f.SearchTasksFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.SearchTasksFunc(query)
}

func (f *Fake) CreateTask(_ context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	f.record("CreateTask")
	if f.CreateTaskFunc == nil {
		return model.Task{}, ErrNotStubbed
	}
	return f.CreateTaskFunc(opt)
}

func (f *Fake) UpdateTask(_ context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	f.record("UpdateTask")
	if f.UpdateTaskFunc == nil {
		return model.Task{}, ErrNotStubbed
	}
	return f.UpdateTaskFunc(id, opt)
}

func (f *Fake) CloseTask(_ context.Context, id string) error {
	f.record("CloseTask")
	if f.CloseTaskFunc == nil {
		return ErrNotStubbed
	}
	return f.CloseTaskFunc(id)
}

func (f *Fake) ReopenTask(_ context.Context, id string) error {
	f.record("ReopenTask")
	if f.ReopenTaskFunc == nil {
		return ErrNotStubbed
	}
	return f.ReopenTaskFunc(id)
}

func (f *Fake) DeleteTask(_ context.Context, id string) error {
	f.record("DeleteTask")
	if f.DeleteTaskFunc == nil {
		return ErrNotStubbed
	}
	return f.DeleteTaskFunc(id)
}

func (f *Fake) MoveTask(_ context.Context, id string, opt repository.MoveTaskOptions) error {
	f.record("MoveTask")
	if f.MoveTaskFunc == nil {
		return ErrNotStubbed
	}
	return f.MoveTaskFunc(id, opt)
}

func (f *Fake) GetProject(_ context.Context, id string) (model.Project, error) {
	f.record("GetProject")
	if f.GetProjectFunc == nil {
		return model.Project{}, ErrNotStubbed
	}
	return f.GetProjectFunc(id)
}

func (f *Fake) ListProjects(_ context.Context) ([]model.Project, error) {
	f.record("ListProjects")
	if f.ListProjectsFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListProjectsFunc()
}

func (f *Fake) CreateProject(_ context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	f.record("CreateProject")
	if f.CreateProjectFunc == nil {
		return model.Project{}, ErrNotStubbed
	}
	return f.CreateProjectFunc(opt)
}

func (f *Fake) ListSections(_ context.Context, projectID string) ([]model.Section, error) {
	f.record("ListSections")
	if f.ListSectionsFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListSectionsFunc(projectID)
}

func (f *Fake) CreateSection(_ context.Context, opt repository.CreateSectionOptions) (model.Section, error) {
	f.record("CreateSection")
	if f.CreateSectionFunc == nil {
		return model.Section{}, ErrNotStubbed
	}
	return f.CreateSectionFunc(opt)
}

func (f *Fake) ListLabels(_ context.Context) ([]model.Label, error) {
	f.record("ListLabels")
	if f.ListLabelsFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListLabelsFunc()
}

func (f *Fake) ListComments(_ context.Context, opt repository.ListCommentsOptions) ([]model.Comment, error) {
	f.record("ListComments")
	if f.ListCommentsFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListCommentsFunc(opt)
}

func (f *Fake) CreateComment(_ context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	f.record("CreateComment")
	if f.CreateCommentFunc == nil {
		return model.Comment{}, ErrNotStubbed
	}
	return f.CreateCommentFunc(opt)
}

func (f *Fake) UpdateComment(_ context.Context, id, content string) (model.Comment, error) {
	f.record("UpdateComment")
	if f.UpdateCommentFunc == nil {
		return model.Comment{}, ErrNotStubbed
	}
	return f.UpdateCommentFunc(id, content)
}

func (f *Fake) DeleteComment(_ context.Context, id string) error {
	f.record("DeleteComment")
	if f.DeleteCommentFunc == nil {
		return ErrNotStubbed
	}
	return f.DeleteCommentFunc(id)
}

func (f *Fake) ListReminders(_ context.Context, taskID string) ([]model.Reminder, error) {
	f.record("ListReminders")
	if f.ListRemindersFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListRemindersFunc(taskID)
}

func (f *Fake) AddReminder(_ context.Context, opt repository.AddReminderOptions) (model.Reminder, error) {
	f.record("AddReminder")
	if f.AddReminderFunc == nil {
		return model.Reminder{}, ErrNotStubbed
	}
	return f.AddReminderFunc(opt)
}

func (f *Fake) DeleteReminder(_ context.Context, id string) error {
	f.record("DeleteReminder")
	if f.DeleteReminderFunc == nil {
		return ErrNotStubbed
	}
	return f.DeleteReminderFunc(id)
}

func (f *Fake) ListActivity(_ context.Context, opt repository.ListActivityOptions) ([]model.ActivityEvent, error) {
	f.record("ListActivity")
	if f.ListActivityFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListActivityFunc(opt)
}

func (f *Fake) ListCompleted(_ context.Context, opt repository.ListCompletedOptions) ([]model.CompletedTask, error) {
	f.record("ListCompleted")
	if f.ListCompletedFunc == nil {
		return nil, ErrNotStubbed
	}
	return f.ListCompletedFunc(opt)
}
