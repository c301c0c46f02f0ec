package model

// Priority bounds as stored by the API. The UI shows 4 as "p1" and 1 as "p4".
const (
	DefaultPriority = 1
	HighestPriority = 4
)

// Task is a Todoist task as seen through the REST API.
type Task struct {
	ID          string
	Content     string
	Description string
	Priority    int // 1 (default, lowest) to 4 (highest, the UI's "p1")
	Due         *Due
	Deadline    *Deadline
	Labels      []string
	ProjectID   string
	SectionID   string // empty when the task has no section
	ParentID    string // empty for top-level tasks
	URL         string
	IsCompleted bool
	CreatedAt   string
}

// Due is a task's due specification. Any of Date, Datetime and String may be empty.
type Due struct {
	Date        string // YYYY-MM-DD
	Datetime    string // RFC3339, only for timed tasks
	String      string // human text, e.g. "every monday"
	Timezone    string
	IsRecurring bool
}

// Deadline is a hard date independent from Due.
type Deadline struct {
	Date string
}

// HasDue reports whether the task carries any due value.
func (t Task) HasDue() bool {
	return t.Due != nil && (t.Due.Date != "" || t.Due.Datetime != "" || t.Due.String != "")
}

// DueDay returns the calendar day component of the due value, or "".
func (t Task) DueDay() string {
	if t.Due == nil {
		return ""
	}
	d := t.Due.Date
	if d == "" {
		d = t.Due.Datetime
	}
	if len(d) >= 10 {
		return d[:10]
	}
	return ""
}

// Section groups tasks inside a project.
type Section struct {
	ID        string
	ProjectID string
	Name      string
	Order     int
}

// Label is a personal label.
type Label struct {
	ID         string
	Name       string
	Color      string
	IsFavorite bool
}
