package model

// Comment belongs to exactly one of a task or a project.
type Comment struct {
	ID         string
	TaskID     string
	ProjectID  string
	Content    string
	PostedAt   string
	Attachment *Attachment
}

// Attachment describes a file attached to a comment.
type Attachment struct {
	FileName     string
	FileType     string
	FileURL      string
	ResourceType string
}
