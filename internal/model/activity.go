package model

// ActivityEvent is one entry of the account's activity log.
type ActivityEvent struct {
	ID              string
	ObjectType      string
	ObjectID        string
	EventType       string
	EventDate       string
	ParentProjectID string
	ParentItemID    string
	Content         string // content or name extracted from extra_data, if any
}

// CompletedTask is an item returned by the completed-tasks endpoint.
type CompletedTask struct {
	ID          string
	TaskID      string
	Content     string
	ProjectID   string
	CompletedAt string
}
