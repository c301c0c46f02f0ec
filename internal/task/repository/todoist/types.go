package todoist

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ---- Wire types scoped to this package ----

// flexID accepts ids encoded either as JSON strings or numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// Task is the REST task object.
type Task struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Description string    `json:"description"`
	Priority    int       `json:"priority"`
	Due         *Due      `json:"due"`
	Deadline    *Deadline `json:"deadline"`
	Labels      []string  `json:"labels"`
	ProjectID   string    `json:"project_id"`
	SectionID   *string   `json:"section_id"`
	ParentID    *string   `json:"parent_id"`
	URL         string    `json:"url"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   string    `json:"created_at"`
}

// Due is the due object shared by tasks and reminders.
type Due struct {
	Date        string  `json:"date"`
	String      string  `json:"string"`
	Datetime    *string `json:"datetime"`
	Timezone    *string `json:"timezone"`
	IsRecurring bool    `json:"is_recurring"`
}

// Deadline is the task deadline object.
type Deadline struct {
	Date string `json:"date"`
}

// Project is the REST project object.
type Project struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	ParentID       *string `json:"parent_id"`
	IsInboxProject bool    `json:"is_inbox_project"`
	IsFavorite     bool    `json:"is_favorite"`
	IsShared       bool    `json:"is_shared"`
	URL            string  `json:"url"`
	CommentCount   int     `json:"comment_count"`
}

// Section is the REST section object.
type Section struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
}

// Label is the REST personal label object.
type Label struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsFavorite bool   `json:"is_favorite"`
}

// Comment is the REST comment object.
type Comment struct {
	ID         string      `json:"id"`
	TaskID     *string     `json:"task_id"`
	ProjectID  *string     `json:"project_id"`
	Content    string      `json:"content"`
	PostedAt   string      `json:"posted_at"`
	Attachment *Attachment `json:"attachment"`
}

// Attachment is a comment file attachment.
type Attachment struct {
	FileName     string `json:"file_name"`
	FileType     string `json:"file_type"`
	FileURL      string `json:"file_url"`
	ResourceType string `json:"resource_type"`
}

// Reminder is the Sync API reminder object.
type Reminder struct {
	ID           flexID `json:"id"`
	ItemID       flexID `json:"item_id"`
	Type         string `json:"type"`
	MinuteOffset *int   `json:"minute_offset"`
	Due          *Due   `json:"due"`
	IsDeleted    bool   `json:"is_deleted"`
}

// ActivityEvent is one entry of /activity/get.
type ActivityEvent struct {
	ID              flexID         `json:"id"`
	ObjectType      string         `json:"object_type"`
	ObjectID        flexID         `json:"object_id"`
	EventType       string         `json:"event_type"`
	EventDate       string         `json:"event_date"`
	ParentProjectID flexID         `json:"parent_project_id"`
	ParentItemID    flexID         `json:"parent_item_id"`
	ExtraData       map[string]any `json:"extra_data"`
}

// CompletedItem is one entry of /completed/get_all.
type CompletedItem struct {
	ID          flexID `json:"id"`
	TaskID      flexID `json:"task_id"`
	Content     string `json:"content"`
	ProjectID   flexID `json:"project_id"`
	CompletedAt string `json:"completed_at"`
}

// ---- Request bodies ----

// CreateTaskRequest is the body for POST /tasks.
type CreateTaskRequest struct {
	Content      string   `json:"content"`
	Description  string   `json:"description,omitempty"`
	Priority     int      `json:"priority,omitempty"`
	DueString    string   `json:"due_string,omitempty"`
	DeadlineDate string   `json:"deadline_date,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	ProjectID    string   `json:"project_id,omitempty"`
	SectionID    string   `json:"section_id,omitempty"`
	ParentID     string   `json:"parent_id,omitempty"`
}

// UpdateTaskRequest is the body for POST /tasks/{id}.
type UpdateTaskRequest struct {
	Content      *string   `json:"content,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Priority     *int      `json:"priority,omitempty"`
	DueString    *string   `json:"due_string,omitempty"`
	DeadlineDate *string   `json:"deadline_date,omitempty"`
	Labels       *[]string `json:"labels,omitempty"`
}

// CreateProjectRequest is the body for POST /projects.
type CreateProjectRequest struct {
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	ParentID   string `json:"parent_id,omitempty"`
	IsFavorite bool   `json:"is_favorite,omitempty"`
}

// CreateSectionRequest is the body for POST /sections.
type CreateSectionRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
}

// CreateCommentRequest is the body for POST /comments.
type CreateCommentRequest struct {
	TaskID    string `json:"task_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
	Content   string `json:"content"`
}

// ActivityQuery filters /activity/get.
type ActivityQuery struct {
	Limit      int
	ObjectType string
	EventType  string
}

// CompletedQuery filters /completed/get_all.
type CompletedQuery struct {
	ProjectID string
	Since     string
	Until     string
	Limit     int
}

func itoa(n int) string { return strconv.Itoa(n) }
