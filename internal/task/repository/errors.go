package repository

import "errors"

var (
	// ErrNotFound is matched by remote 404 responses.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized is matched by remote 401 and 403 responses.
	ErrUnauthorized = errors.New("request not authorized")
	// ErrSyncCommand is returned when a Sync API command is rejected.
	ErrSyncCommand = errors.New("sync command rejected")
)
