package model

// Project is a Todoist project.
type Project struct {
	ID           string
	Name         string
	Color        string
	ParentID     string
	IsInbox      bool
	IsFavorite   bool
	IsShared     bool
	URL          string
	CommentCount int
}
