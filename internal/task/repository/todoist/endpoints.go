package todoist

import (
	"context"
	"net/url"
	"strings"
)

// GetTask fetches a single active task via GET /tasks/{id}.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var t Task
	if err := c.restGet(ctx, "/tasks/"+url.PathEscape(id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks lists active tasks via GET /tasks.
func (c *Client) ListTasks(ctx context.Context, projectID, sectionID, label, filter string, ids []string) ([]Task, error) {
	q := url.Values{}
	setIf(q, "project_id", projectID)
	setIf(q, "section_id", sectionID)
	setIf(q, "label", label)
	setIf(q, "filter", filter)
	if len(ids) > 0 {
		q.Set("ids", strings.Join(ids, ","))
	}
	var tasks []Task
	if err := c.restGet(ctx, "/tasks", q, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task via POST /tasks.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var t Task
	if err := c.restPost(ctx, "/tasks", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask updates a task via POST /tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	var t Task
	if err := c.restPost(ctx, "/tasks/"+url.PathEscape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CloseTask completes a task via POST /tasks/{id}/close.
func (c *Client) CloseTask(ctx context.Context, id string) error {
	return c.restPost(ctx, "/tasks/"+url.PathEscape(id)+"/close", nil, nil)
}

// ReopenTask reopens a completed task via POST /tasks/{id}/reopen.
func (c *Client) ReopenTask(ctx context.Context, id string) error {
	return c.restPost(ctx, "/tasks/"+url.PathEscape(id)+"/reopen", nil, nil)
}

// DeleteTask deletes a task via DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.restDelete(ctx, "/tasks/"+url.PathEscape(id))
}

// GetProject fetches a project via GET /projects/{id}.
func (c *Client) GetProject(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := c.restGet(ctx, "/projects/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProjects lists all projects via GET /projects.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.restGet(ctx, "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project via POST /projects.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var p Project
	if err := c.restPost(ctx, "/projects", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListSections lists sections, optionally for one project, via GET /sections.
func (c *Client) ListSections(ctx context.Context, projectID string) ([]Section, error) {
	q := url.Values{}
	setIf(q, "project_id", projectID)
	var sections []Section
	if err := c.restGet(ctx, "/sections", q, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// CreateSection creates a section via POST /sections.
func (c *Client) CreateSection(ctx context.Context, req CreateSectionRequest) (*Section, error) {
	var s Section
	if err := c.restPost(ctx, "/sections", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListLabels lists personal labels via GET /labels.
func (c *Client) ListLabels(ctx context.Context) ([]Label, error) {
	var labels []Label
	if err := c.restGet(ctx, "/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// ListComments lists comments of a task or a project via GET /comments.
func (c *Client) ListComments(ctx context.Context, taskID, projectID string) ([]Comment, error) {
	q := url.Values{}
	setIf(q, "task_id", taskID)
	setIf(q, "project_id", projectID)
	var comments []Comment
	if err := c.restGet(ctx, "/comments", q, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment creates a comment via POST /comments.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	var cm Comment
	if err := c.restPost(ctx, "/comments", req, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

// UpdateComment changes a comment's content via POST /comments/{id}.
func (c *Client) UpdateComment(ctx context.Context, id, content string) (*Comment, error) {
	var cm Comment
	body := map[string]string{"content": content}
	if err := c.restPost(ctx, "/comments/"+url.PathEscape(id), body, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

// DeleteComment deletes a comment via DELETE /comments/{id}.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.restDelete(ctx, "/comments/"+url.PathEscape(id))
}

// ListActivity reads the activity log via GET /activity/get (Sync API).
func (c *Client) ListActivity(ctx context.Context, q ActivityQuery) ([]ActivityEvent, error) {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", itoa(q.Limit))
	}
	setIf(v, "object_type", q.ObjectType)
	setIf(v, "event_type", q.EventType)
	var resp struct {
		Events []ActivityEvent `json:"events"`
	}
	if err := c.syncGet(ctx, "/activity/get", v, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

// ListCompleted reads completed tasks via GET /completed/get_all (Sync API).
func (c *Client) ListCompleted(ctx context.Context, q CompletedQuery) ([]CompletedItem, error) {
	v := url.Values{}
	setIf(v, "project_id", q.ProjectID)
	setIf(v, "since", q.Since)
	setIf(v, "until", q.Until)
	if q.Limit > 0 {
		v.Set("limit", itoa(q.Limit))
	}
	var resp struct {
		Items []CompletedItem `json:"items"`
	}
	if err := c.syncGet(ctx, "/completed/get_all", v, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
