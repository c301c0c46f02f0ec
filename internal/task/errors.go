package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyQuery      = errors.New("search query is empty")
	ErrEmptyContent    = errors.New("content is empty")
	ErrEmptyName       = errors.New("name is empty")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrMoveDestination = errors.New("move needs exactly one destination")
	ErrReminderTrigger = errors.New("reminder needs exactly one of a before-duration or an absolute time")
	ErrTaskHasNoDue    = errors.New("task has no due date")
	ErrInboxNotFound   = errors.New("inbox project not found")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidPriority = errors.New("priority must be between 1 and 4")
)
