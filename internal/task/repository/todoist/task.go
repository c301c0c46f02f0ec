package todoist

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task/repository"
	pkgLog "todoist-agent-cli/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a Todoist-backed repository.
func New(client *Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, err := r.client.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return toTask(t), nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := r.client.ListTasks(ctx, opt.ProjectID, opt.SectionID, opt.Label, opt.Filter, opt.IDs)
	if err != nil {
		return nil, err
	}
	return toTasks(tasks), nil
}

func (r *implRepository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	filter := "search: " + strings.TrimSpace(query)
	r.l.Debugf(ctx, "todoist repository: search filter %q", filter)
	tasks, err := r.client.ListTasks(ctx, "", "", "", filter, nil)
	if err != nil {
		return nil, err
	}
	return toTasks(tasks), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	t, err := r.client.CreateTask(ctx, CreateTaskRequest{
		Content:      opt.Content,
		Description:  opt.Description,
		Priority:     opt.Priority,
		DueString:    opt.DueString,
		DeadlineDate: opt.Deadline,
		Labels:       opt.Labels,
		ProjectID:    opt.ProjectID,
		SectionID:    opt.SectionID,
		ParentID:     opt.ParentID,
	})
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create task: %v", err)
		return model.Task{}, err
	}
	return toTask(t), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	req := UpdateTaskRequest{
		Content:      opt.Content,
		Description:  opt.Description,
		Priority:     opt.Priority,
		DueString:    opt.DueString,
		DeadlineDate: opt.Deadline,
	}
	if opt.Labels != nil {
		labels := opt.Labels
		req.Labels = &labels
	}
	t, err := r.client.UpdateTask(ctx, id, req)
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to update task %s: %v", id, err)
		return model.Task{}, err
	}
	return toTask(t), nil
}

func (r *implRepository) CloseTask(ctx context.Context, id string) error {
	return r.client.CloseTask(ctx, id)
}

func (r *implRepository) ReopenTask(ctx context.Context, id string) error {
	return r.client.ReopenTask(ctx, id)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	return r.client.DeleteTask(ctx, id)
}

func (r *implRepository) MoveTask(ctx context.Context, id string, opt repository.MoveTaskOptions) error {
	args := map[string]string{"id": id}
	switch {
	case opt.ProjectID != "":
		args["project_id"] = opt.ProjectID
	case opt.SectionID != "":
		args["section_id"] = opt.SectionID
	case opt.ParentID != "":
		args["parent_id"] = opt.ParentID
	default:
		return fmt.Errorf("move task %s: no destination given", id)
	}
	_, err := r.client.ExecuteCommands(ctx, NewCommand("item_move", args, false))
	return err
}

func (r *implRepository) GetProject(ctx context.Context, id string) (model.Project, error) {
	p, err := r.client.GetProject(ctx, id)
	if err != nil {
		return model.Project{}, err
	}
	return toProject(p), nil
}

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := r.client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Project, 0, len(projects))
	for i := range projects {
		out = append(out, toProject(&projects[i]))
	}
	return out, nil
}

func (r *implRepository) CreateProject(ctx context.Context, opt repository.CreateProjectOptions) (model.Project, error) {
	p, err := r.client.CreateProject(ctx, CreateProjectRequest{
		Name:       opt.Name,
		Color:      opt.Color,
		ParentID:   opt.ParentID,
		IsFavorite: opt.IsFavorite,
	})
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create project: %v", err)
		return model.Project{}, err
	}
	return toProject(p), nil
}

func (r *implRepository) ListSections(ctx context.Context, projectID string) ([]model.Section, error) {
	sections, err := r.client.ListSections(ctx, projectID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, toSection(&s))
	}
	return out, nil
}

func (r *implRepository) CreateSection(ctx context.Context, opt repository.CreateSectionOptions) (model.Section, error) {
	s, err := r.client.CreateSection(ctx, CreateSectionRequest{Name: opt.Name, ProjectID: opt.ProjectID})
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create section: %v", err)
		return model.Section{}, err
	}
	return toSection(s), nil
}

func (r *implRepository) ListLabels(ctx context.Context) ([]model.Label, error) {
	labels, err := r.client.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Label, 0, len(labels))
	for _, l := range labels {
		out = append(out, model.Label{ID: l.ID, Name: l.Name, Color: l.Color, IsFavorite: l.IsFavorite})
	}
	return out, nil
}

func (r *implRepository) ListComments(ctx context.Context, opt repository.ListCommentsOptions) ([]model.Comment, error) {
	comments, err := r.client.ListComments(ctx, opt.TaskID, opt.ProjectID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Comment, 0, len(comments))
	for i := range comments {
		out = append(out, toComment(&comments[i]))
	}
	return out, nil
}

func (r *implRepository) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	c, err := r.client.CreateComment(ctx, CreateCommentRequest{
		TaskID:    opt.TaskID,
		ProjectID: opt.ProjectID,
		Content:   opt.Content,
	})
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to create comment: %v", err)
		return model.Comment{}, err
	}
	return toComment(c), nil
}

func (r *implRepository) UpdateComment(ctx context.Context, id, content string) (model.Comment, error) {
	c, err := r.client.UpdateComment(ctx, id, content)
	if err != nil {
		return model.Comment{}, err
	}
	return toComment(c), nil
}

func (r *implRepository) DeleteComment(ctx context.Context, id string) error {
	return r.client.DeleteComment(ctx, id)
}

func (r *implRepository) ListReminders(ctx context.Context, taskID string) ([]model.Reminder, error) {
	reminders, err := r.client.ListReminders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Reminder, 0)
	for i := range reminders {
		rm := &reminders[i]
		if rm.IsDeleted || string(rm.ItemID) != taskID {
			continue
		}
		out = append(out, toReminder(rm))
	}
	return out, nil
}

func (r *implRepository) AddReminder(ctx context.Context, opt repository.AddReminderOptions) (model.Reminder, error) {
	args := map[string]any{"item_id": opt.TaskID}
	rem := model.Reminder{TaskID: opt.TaskID}
	if opt.MinuteOffset != nil {
		args["type"] = "relative"
		args["minute_offset"] = *opt.MinuteOffset
		rem.Type = "relative"
		offset := *opt.MinuteOffset
		rem.MinuteOffset = &offset
	} else {
		args["type"] = "absolute"
		args["due"] = map[string]string{"date": opt.DueDatetime}
		rem.Type = "absolute"
		rem.Due = &model.Due{Date: opt.DueDatetime}
	}

	cmd := NewCommand("reminder_add", args, true)
	res, err := r.client.ExecuteCommands(ctx, cmd)
	if err != nil {
		r.l.Errorf(ctx, "todoist repository: failed to add reminder: %v", err)
		return model.Reminder{}, err
	}
	rem.ID = res.TempIDMapping[cmd.TempID]
	return rem, nil
}

func (r *implRepository) DeleteReminder(ctx context.Context, id string) error {
	_, err := r.client.ExecuteCommands(ctx, NewCommand("reminder_delete", map[string]string{"id": id}, false))
	return err
}

func (r *implRepository) ListActivity(ctx context.Context, opt repository.ListActivityOptions) ([]model.ActivityEvent, error) {
	events, err := r.client.ListActivity(ctx, ActivityQuery{
		Limit:      opt.Limit,
		ObjectType: opt.ObjectType,
		EventType:  opt.EventType,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.ActivityEvent, 0, len(events))
	for _, e := range events {
		out = append(out, model.ActivityEvent{
			ID:              string(e.ID),
			ObjectType:      e.ObjectType,
			ObjectID:        string(e.ObjectID),
			EventType:       e.EventType,
			EventDate:       e.EventDate,
			ParentProjectID: string(e.ParentProjectID),
			ParentItemID:    string(e.ParentItemID),
			Content:         extraContent(e.ExtraData),
		})
	}
	return out, nil
}

func (r *implRepository) ListCompleted(ctx context.Context, opt repository.ListCompletedOptions) ([]model.CompletedTask, error) {
	items, err := r.client.ListCompleted(ctx, CompletedQuery{
		ProjectID: opt.ProjectID,
		Since:     opt.Since,
		Until:     opt.Until,
		Limit:     opt.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]model.CompletedTask, 0, len(items))
	for _, it := range items {
		out = append(out, model.CompletedTask{
			ID:          string(it.ID),
			TaskID:      string(it.TaskID),
			Content:     it.Content,
			ProjectID:   string(it.ProjectID),
			CompletedAt: it.CompletedAt,
		})
	}
	return out, nil
}
