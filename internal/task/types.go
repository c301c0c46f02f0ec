package task

import "todoist-agent-cli/internal/model"

// TodayFilter selects what "today" shows.
const TodayFilter = "today | overdue"

// ListInput filters the task listing. ProjectRef is resolved before the call.
type ListInput struct {
	ProjectRef string
	Label      string
	Filter     string
}

// AddInput is a new task. ProjectRef and ParentRef are references, SectionID is a raw id.
type AddInput struct {
	Content     string
	Description string
	Priority    int // 0 leaves the server default
	Due         string
	Deadline    string
	Labels      []string
	ProjectRef  string
	SectionID   string
	ParentRef   string
}

// UpdateInput changes a task. nil fields are left untouched.
type UpdateInput struct {
	Ref         string
	Content     *string
	Description *string
	Priority    *int
	Due         *string
	Deadline    *string
	Labels      []string // nil leaves labels untouched
}

// Empty reports whether no field is set.
func (in UpdateInput) Empty() bool {
	return in.Content == nil && in.Description == nil && in.Priority == nil &&
		in.Due == nil && in.Deadline == nil && in.Labels == nil
}

// MoveInput names exactly one destination.
type MoveInput struct {
	Ref        string
	ProjectRef string
	SectionID  string
	ParentRef  string
}

// CommentsInput selects comments of a task, or of a project when OnProject is set.
type CommentsInput struct {
	Ref       string
	OnProject bool
}

// CommentsOutput carries the resolved parent alongside the comments.
type CommentsOutput struct {
	TaskID    string
	ProjectID string
	Comments  []model.Comment
}

// AddCommentInput is a new comment on a task or project.
type AddCommentInput struct {
	Ref       string
	OnProject bool
	Content   string
}

// RemindersOutput lists the reminders of one task.
type RemindersOutput struct {
	Task      model.Task
	Reminders []model.Reminder
}

// AddReminderInput sets exactly one of BeforeMinutes and At.
type AddReminderInput struct {
	Ref           string
	BeforeMinutes *int
	At            string
}

// AddReminderOutput is the created reminder and the task it belongs to.
type AddReminderOutput struct {
	Task     model.Task
	Reminder model.Reminder
}

// ActivityInput filters the activity log.
type ActivityInput struct {
	Limit      int
	ObjectType string
	EventType  string
}

// CompletedInput filters completed tasks. Since and Until accept today,
// yesterday, "N days ago" or YYYY-MM-DD.
type CompletedInput struct {
	Since      string
	Until      string
	ProjectRef string
	Limit      int
}

// AddProjectInput is a new project.
type AddProjectInput struct {
	Name      string
	Color     string
	Favorite  bool
	ParentRef string
}

// AddSectionInput is a new section in a referenced project.
type AddSectionInput struct {
	Name       string
	ProjectRef string
}

// ProjectCount is the number of active tasks in one project.
type ProjectCount struct {
	Project   model.Project
	TaskCount int
}

// ReviewOutput is the read-only daily review.
type ReviewOutput struct {
	Today         []model.Task
	Inbox         []model.Task
	Overdue       []model.Task
	FloatingCount int
	Projects      []ProjectCount
}
