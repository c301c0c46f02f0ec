package repository

// ListTasksOptions filters the active task listing. Zero values are ignored.
type ListTasksOptions struct {
	ProjectID string
	SectionID string
	Label     string
	Filter    string // Todoist filter query, e.g. "today | overdue"
	IDs       []string
}

// CreateTaskOptions holds the fields for a new task.
type CreateTaskOptions struct {
	Content     string
	Description string
	Priority    int    // 0 means "let the server decide"
	DueString   string // natural language, parsed by the server
	Deadline    string // YYYY-MM-DD
	Labels      []string
	ProjectID   string
	SectionID   string
	ParentID    string
}

// UpdateTaskOptions holds the fields to change. nil pointers are left untouched.
type UpdateTaskOptions struct {
	Content     *string
	Description *string
	Priority    *int
	DueString   *string
	Deadline    *string
	Labels      []string // nil leaves labels untouched, empty clears them
}

// MoveTaskOptions names exactly one destination.
type MoveTaskOptions struct {
	ProjectID string
	SectionID string
	ParentID  string
}

// CreateProjectOptions holds the fields for a new project.
type CreateProjectOptions struct {
	Name       string
	Color      string
	ParentID   string
	IsFavorite bool
}

// CreateSectionOptions holds the fields for a new section.
type CreateSectionOptions struct {
	Name      string
	ProjectID string
}

// ListCommentsOptions selects comments of a task or of a project.
type ListCommentsOptions struct {
	TaskID    string
	ProjectID string
}

// CreateCommentOptions holds a new comment; exactly one parent id is set.
type CreateCommentOptions struct {
	TaskID    string
	ProjectID string
	Content   string
}

// AddReminderOptions describes a reminder; exactly one of MinuteOffset and DueDatetime is set.
type AddReminderOptions struct {
	TaskID       string
	MinuteOffset *int
	DueDatetime  string
}

// ListActivityOptions filters the activity log.
type ListActivityOptions struct {
	Limit      int
	ObjectType string
	EventType  string
}

// ListCompletedOptions filters completed tasks.
type ListCompletedOptions struct {
	ProjectID string
	Since     string
	Until     string
	Limit     int
}
