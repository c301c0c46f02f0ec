package todoist

import (
	"strings"

	"todoist-agent-cli/internal/model"
)

func toTasks(tasks []Task) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, toTask(&tasks[i]))
	}
	return out
}

// toTask converts a REST task and normalises optional ids. A priority outside 1..4
// falls back to model.DefaultPriority.
func toTask(t *Task) model.Task {
	priority := t.Priority
	if priority < model.DefaultPriority || priority > model.HighestPriority {
		priority = model.DefaultPriority
	}

	var labels []string
	for _, l := range t.Labels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}

	task := model.Task{
		ID:          t.ID,
		Content:     t.Content,
		Description: strings.TrimSpace(t.Description),
		Priority:    priority,
		Due:         toDue(t.Due),
		Labels:      labels,
		ProjectID:   t.ProjectID,
		SectionID:   deref(t.SectionID),
		ParentID:    deref(t.ParentID),
		URL:         t.URL,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
	}
	if t.Deadline != nil && t.Deadline.Date != "" {
		task.Deadline = &model.Deadline{Date: t.Deadline.Date}
	}
	return task
}

func toDue(d *Due) *model.Due {
	if d == nil {
		return nil
	}
	return &model.Due{
		Date:        d.Date,
		Datetime:    deref(d.Datetime),
		String:      d.String,
		Timezone:    deref(d.Timezone),
		IsRecurring: d.IsRecurring,
	}
}

func toProject(p *Project) model.Project {
	return model.Project{
		ID:           p.ID,
		Name:         p.Name,
		Color:        p.Color,
		ParentID:     deref(p.ParentID),
		IsInbox:      p.IsInboxProject,
		IsFavorite:   p.IsFavorite,
		IsShared:     p.IsShared,
		URL:          p.URL,
		CommentCount: p.CommentCount,
	}
}

func toSection(s *Section) model.Section {
	return model.Section{ID: s.ID, ProjectID: s.ProjectID, Name: s.Name, Order: s.Order}
}

func toComment(c *Comment) model.Comment {
	cm := model.Comment{
		ID:        c.ID,
		TaskID:    deref(c.TaskID),
		ProjectID: deref(c.ProjectID),
		Content:   c.Content,
		PostedAt:  c.PostedAt,
	}
	if a := c.Attachment; a != nil {
		cm.Attachment = &model.Attachment{
			FileName:     a.FileName,
			FileType:     a.FileType,
			FileURL:      a.FileURL,
			ResourceType: a.ResourceType,
		}
	}
	return cm
}

func toReminder(r *Reminder) model.Reminder {
	rem := model.Reminder{
		ID:     string(r.ID),
		TaskID: string(r.ItemID),
		Type:   r.Type,
	}
	// Exactly one of offset and due is kept; relative reminders win.
	if r.MinuteOffset != nil {
		offset := *r.MinuteOffset
		rem.MinuteOffset = &offset
	} else {
		rem.Due = toDue(r.Due)
	}
	return rem
}

// extraContent pulls a display string out of an activity event's extra_data.
func extraContent(extra map[string]any) string {
	for _, key := range []string{"content", "name"} {
		if s, ok := extra[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
