package cli

import (
	"context"
	"errors"
	"fmt"

	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

// UsageError reports a missing or invalid argument.
type UsageError struct {
	Usage   string // e.g. "td show <task-ref>"
	Problem string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s\nusage: %s", e.Problem, e.Usage)
}

func missingArg(usage, name string) error {
	return &UsageError{Usage: usage, Problem: fmt.Sprintf("missing required argument %s", name)}
}

func badFlag(usage, format string, args ...any) error {
	return &UsageError{Usage: usage, Problem: fmt.Sprintf(format, args...)}
}

// mapError adds remediation text to errors that do not already carry it.
// Resolver, credential and usage errors are returned unchanged.
func mapError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUnauthorized):
		return fmt.Errorf("%w\nthe Todoist API rejected the token; check TODOIST_API_TOKEN or the secret lease", err)
	case errors.Is(err, repository.ErrSyncCommand):
		return fmt.Errorf("%w\ncheck the ids passed to the command", err)
	case errors.Is(err, task.ErrTaskHasNoDue):
		return fmt.Errorf("%w\nset one with: td update <task-ref> --due \"tomorrow 9am\", or use --at", err)
	case errors.Is(err, task.ErrInboxNotFound):
		return fmt.Errorf("%w\nrun td projects to inspect the account", err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w\nthe Todoist API did not answer in time; raise todoist.timeout or retry", err)
	}
	return err
}
