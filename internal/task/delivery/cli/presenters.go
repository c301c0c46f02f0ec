package cli

import (
	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
)

type taskResp struct {
	ID          string   `json:"id"`
	Content     string   `json:"content"`
	Description string   `json:"description,omitempty"`
	Priority    int      `json:"priority"`
	Due         *string  `json:"due"`
	DueString   *string  `json:"dueString"`
	IsRecurring bool     `json:"isRecurring"`
	Deadline    *string  `json:"deadline"`
	Labels      []string `json:"labels,omitempty"`
	ProjectID   string   `json:"projectId"`
	SectionID   string   `json:"sectionId,omitempty"`
	ParentID    string   `json:"parentId,omitempty"`
	URL         string   `json:"url"`
}

// newTaskResp prefers the due date over the due datetime; a due made of only a
// recurrence string yields due=null.
func newTaskResp(t model.Task) taskResp {
	r := taskResp{
		ID:          t.ID,
		Content:     t.Content,
		Description: t.Description,
		Priority:    t.Priority,
		Labels:      t.Labels,
		ProjectID:   t.ProjectID,
		SectionID:   t.SectionID,
		ParentID:    t.ParentID,
		URL:         t.URL,
	}
	if t.Due != nil {
		switch {
		case t.Due.Date != "":
			r.Due = strRef(t.Due.Date)
		case t.Due.Datetime != "":
			r.Due = strRef(t.Due.Datetime)
		}
		if t.Due.String != "" {
			r.DueString = strRef(t.Due.String)
		}
		r.IsRecurring = t.Due.IsRecurring
	}
	if t.Deadline != nil && t.Deadline.Date != "" {
		r.Deadline = strRef(t.Deadline.Date)
	}
	return r
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, newTaskResp(t))
	}
	return out
}

type taskListResp struct {
	Count int        `json:"count"`
	Tasks []taskResp `json:"tasks"`
}

func newTaskListResp(tasks []model.Task) taskListResp {
	return taskListResp{Count: len(tasks), Tasks: newTaskResps(tasks)}
}

type searchResp struct {
	Query string     `json:"query"`
	Count int        `json:"count"`
	Tasks []taskResp `json:"tasks"`
}

// statusResp acknowledges an action on a task or another entity.
type statusResp struct {
	ID      string `json:"id"`
	Content string `json:"content,omitempty"`
	Status  string `json:"status"`
}

type projectResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	IsInbox    bool   `json:"isInbox"`
	IsFavorite bool   `json:"isFavorite"`
	ParentID   string `json:"parentId,omitempty"`
	URL        string `json:"url,omitempty"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:         p.ID,
		Name:       p.Name,
		Color:      p.Color,
		IsInbox:    p.IsInbox,
		IsFavorite: p.IsFavorite,
		ParentID:   p.ParentID,
		URL:        p.URL,
	}
}

type projectListResp struct {
	Count    int           `json:"count"`
	Projects []projectResp `json:"projects"`
}

func newProjectListResp(projects []model.Project) projectListResp {
	out := projectListResp{Count: len(projects), Projects: make([]projectResp, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, newProjectResp(p))
	}
	return out
}

type sectionResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
	Order     int    `json:"order"`
}

func newSectionResp(s model.Section) sectionResp {
	return sectionResp{ID: s.ID, Name: s.Name, ProjectID: s.ProjectID, Order: s.Order}
}

type sectionListResp struct {
	Count    int           `json:"count"`
	Sections []sectionResp `json:"sections"`
}

func newSectionListResp(sections []model.Section) sectionListResp {
	out := sectionListResp{Count: len(sections), Sections: make([]sectionResp, 0, len(sections))}
	for _, s := range sections {
		out.Sections = append(out.Sections, newSectionResp(s))
	}
	return out
}

type labelResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color,omitempty"`
	IsFavorite bool   `json:"isFavorite"`
}

type labelListResp struct {
	Count  int         `json:"count"`
	Labels []labelResp `json:"labels"`
}

func newLabelListResp(labels []model.Label) labelListResp {
	out := labelListResp{Count: len(labels), Labels: make([]labelResp, 0, len(labels))}
	for _, l := range labels {
		out.Labels = append(out.Labels, labelResp{ID: l.ID, Name: l.Name, Color: l.Color, IsFavorite: l.IsFavorite})
	}
	return out
}

type commentResp struct {
	ID             string `json:"id"`
	Content        string `json:"content"`
	PostedAt       string `json:"postedAt"`
	TaskID         string `json:"taskId,omitempty"`
	ProjectID      string `json:"projectId,omitempty"`
	HasAttachment  bool   `json:"hasAttachment"`
	AttachmentName string `json:"attachmentName,omitempty"`
}

func newCommentResp(c model.Comment) commentResp {
	r := commentResp{
		ID:        c.ID,
		Content:   c.Content,
		PostedAt:  c.PostedAt,
		TaskID:    c.TaskID,
		ProjectID: c.ProjectID,
	}
	if c.Attachment != nil {
		r.HasAttachment = true
		r.AttachmentName = c.Attachment.FileName
	}
	return r
}

type commentListResp struct {
	TaskID    string        `json:"taskId,omitempty"`
	ProjectID string        `json:"projectId,omitempty"`
	Count     int           `json:"count"`
	Comments  []commentResp `json:"comments"`
}

func newCommentListResp(out task.CommentsOutput) commentListResp {
	r := commentListResp{
		TaskID:    out.TaskID,
		ProjectID: out.ProjectID,
		Count:     len(out.Comments),
		Comments:  make([]commentResp, 0, len(out.Comments)),
	}
	for _, c := range out.Comments {
		r.Comments = append(r.Comments, newCommentResp(c))
	}
	return r
}

type reminderResp struct {
	ID           string  `json:"id"`
	TaskID       string  `json:"taskId"`
	Type         string  `json:"type,omitempty"`
	MinuteOffset *int    `json:"minuteOffset,omitempty"`
	Due          *string `json:"due,omitempty"`
}

func newReminderResp(r model.Reminder) reminderResp {
	out := reminderResp{ID: r.ID, TaskID: r.TaskID, Type: r.Type, MinuteOffset: r.MinuteOffset}
	if r.MinuteOffset == nil && r.Due != nil {
		switch {
		case r.Due.Datetime != "":
			out.Due = strRef(r.Due.Datetime)
		case r.Due.Date != "":
			out.Due = strRef(r.Due.Date)
		}
	}
	return out
}

type reminderListResp struct {
	TaskID    string         `json:"taskId"`
	Content   string         `json:"content"`
	Count     int            `json:"count"`
	Reminders []reminderResp `json:"reminders"`
}

func newReminderListResp(out task.RemindersOutput) reminderListResp {
	r := reminderListResp{
		TaskID:    out.Task.ID,
		Content:   out.Task.Content,
		Count:     len(out.Reminders),
		Reminders: make([]reminderResp, 0, len(out.Reminders)),
	}
	for _, rem := range out.Reminders {
		r.Reminders = append(r.Reminders, newReminderResp(rem))
	}
	return r
}

type activityResp struct {
	ID              string `json:"id"`
	ObjectType      string `json:"objectType"`
	ObjectID        string `json:"objectId"`
	EventType       string `json:"eventType"`
	EventDate       string `json:"eventDate"`
	ParentProjectID string `json:"parentProjectId,omitempty"`
	ParentItemID    string `json:"parentItemId,omitempty"`
	Content         string `json:"content,omitempty"`
}

type activityListResp struct {
	Count  int            `json:"count"`
	Events []activityResp `json:"events"`
}

func newActivityListResp(events []model.ActivityEvent) activityListResp {
	out := activityListResp{Count: len(events), Events: make([]activityResp, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, activityResp{
			ID:              e.ID,
			ObjectType:      e.ObjectType,
			ObjectID:        e.ObjectID,
			EventType:       e.EventType,
			EventDate:       e.EventDate,
			ParentProjectID: e.ParentProjectID,
			ParentItemID:    e.ParentItemID,
			Content:         e.Content,
		})
	}
	return out
}

type completedResp struct {
	ID          string `json:"id"`
	TaskID      string `json:"taskId"`
	Content     string `json:"content"`
	ProjectID   string `json:"projectId"`
	CompletedAt string `json:"completedAt"`
}

type completedListResp struct {
	Count int             `json:"count"`
	Items []completedResp `json:"items"`
}

func newCompletedListResp(items []model.CompletedTask) completedListResp {
	out := completedListResp{Count: len(items), Items: make([]completedResp, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, completedResp{
			ID:          it.ID,
			TaskID:      it.TaskID,
			Content:     it.Content,
			ProjectID:   it.ProjectID,
			CompletedAt: it.CompletedAt,
		})
	}
	return out
}

type projectCountResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"taskCount"`
}

type reviewResp struct {
	Today         taskListResp       `json:"today"`
	Inbox         taskListResp       `json:"inbox"`
	Overdue       taskListResp       `json:"overdue"`
	FloatingCount int                `json:"floatingCount"`
	Projects      []projectCountResp `json:"projects"`
}

func newReviewResp(out task.ReviewOutput) reviewResp {
	r := reviewResp{
		Today:         newTaskListResp(out.Today),
		Inbox:         newTaskListResp(out.Inbox),
		Overdue:       newTaskListResp(out.Overdue),
		FloatingCount: out.FloatingCount,
		Projects:      make([]projectCountResp, 0, len(out.Projects)),
	}
	for _, pc := range out.Projects {
		r.Projects = append(r.Projects, projectCountResp{ID: pc.Project.ID, Name: pc.Project.Name, TaskCount: pc.TaskCount})
	}
	return r
}

func strRef(s string) *string {
	return &s
}
