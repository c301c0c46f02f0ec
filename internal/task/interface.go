package task

import (
	"context"

	"todoist-agent-cli/internal/model"
)

// UseCase holds one operation per CLI verb. Every method resolves references,
// calls the remote service and returns model values; formatting is left to delivery.
type UseCase interface {
	// Task queries
	Today(ctx context.Context) ([]model.Task, error)
	Inbox(ctx context.Context) ([]model.Task, error)
	Search(ctx context.Context, query string) ([]model.Task, error)
	List(ctx context.Context, input ListInput) ([]model.Task, error)
	Show(ctx context.Context, ref string) (model.Task, error)

	// Task mutations
	Add(ctx context.Context, input AddInput) (model.Task, error)
	Complete(ctx context.Context, ref string) (model.Task, error)
	Reopen(ctx context.Context, ref string) (model.Task, error)
	Delete(ctx context.Context, ref string) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Move(ctx context.Context, input MoveInput) (model.Task, error)

	// Comments
	Comments(ctx context.Context, input CommentsInput) (CommentsOutput, error)
	AddComment(ctx context.Context, input AddCommentInput) (model.Comment, error)
	UpdateComment(ctx context.Context, id, content string) (model.Comment, error)
	DeleteComment(ctx context.Context, id string) error

	// Reminders
	Reminders(ctx context.Context, ref string) (RemindersOutput, error)
	AddReminder(ctx context.Context, input AddReminderInput) (AddReminderOutput, error)
	DeleteReminder(ctx context.Context, id string) error

	// History
	Activity(ctx context.Context, input ActivityInput) ([]model.ActivityEvent, error)
	Completed(ctx context.Context, input CompletedInput) ([]model.CompletedTask, error)

	// Projects, sections, labels
	Projects(ctx context.Context) ([]model.Project, error)
	Sections(ctx context.Context, projectRef string) ([]model.Section, error)
	Labels(ctx context.Context) ([]model.Label, error)
	AddProject(ctx context.Context, input AddProjectInput) (model.Project, error)
	AddSection(ctx context.Context, input AddSectionInput) (model.Section, error)

	// Review aggregates today, inbox, overdue and per-project counts.
	Review(ctx context.Context) (ReviewOutput, error)
}
