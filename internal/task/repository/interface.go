package repository

import (
	"context"

	"todoist-agent-cli/internal/model"
)

// Repository is the typed surface of the remote task service.
// Implementations perform all payload coercion; callers see only model types.
type Repository interface {
	// Tasks
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	SearchTasks(ctx context.Context, query string) ([]model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	CloseTask(ctx context.Context, id string) error
	ReopenTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	MoveTask(ctx context.Context, id string, opt MoveTaskOptions) error

	// Projects, sections, labels
	GetProject(ctx context.Context, id string) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, opt CreateProjectOptions) (model.Project, error)
	ListSections(ctx context.Context, projectID string) ([]model.Section, error)
	CreateSection(ctx context.Context, opt CreateSectionOptions) (model.Section, error)
	ListLabels(ctx context.Context) ([]model.Label, error)

	// Comments
	ListComments(ctx context.Context, opt ListCommentsOptions) ([]model.Comment, error)
	CreateComment(ctx context.Context, opt CreateCommentOptions) (model.Comment, error)
	UpdateComment(ctx context.Context, id, content string) (model.Comment, error)
	DeleteComment(ctx context.Context, id string) error

	// Reminders (Sync API command batches)
	ListReminders(ctx context.Context, taskID string) ([]model.Reminder, error)
	AddReminder(ctx context.Context, opt AddReminderOptions) (model.Reminder, error)
	DeleteReminder(ctx context.Context, id string) error

	// History
	ListActivity(ctx context.Context, opt ListActivityOptions) ([]model.ActivityEvent, error)
	ListCompleted(ctx context.Context, opt ListCompletedOptions) ([]model.CompletedTask, error)
}
