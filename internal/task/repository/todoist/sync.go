package todoist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"todoist-agent-cli/internal/task/repository"
)

// Command is one entry of a Sync API command batch.
type Command struct {
	Type   string `json:"type"`
	UUID   string `json:"uuid"`
	TempID string `json:"temp_id,omitempty"`
	Args   any    `json:"args"`
}

// NewCommand builds a uniquely identified command. Creating commands also get a temp id.
func NewCommand(typ string, args any, withTempID bool) Command {
	cmd := Command{Type: typ, UUID: uuid.NewString(), Args: args}
	if withTempID {
		cmd.TempID = uuid.NewString()
	}
	return cmd
}

// SyncResult is the relevant part of a /sync answer to a command batch.
type SyncResult struct {
	SyncStatus    map[string]json.RawMessage `json:"sync_status"`
	TempIDMapping map[string]string          `json:"temp_id_mapping"`
}

// syncError is the object Todoist puts in sync_status for a failed command.
type syncError struct {
	ErrorCode int    `json:"error_code"`
	Error     string `json:"error"`
}

// ExecuteCommands submits a command batch and checks every command's status.
func (c *Client) ExecuteCommands(ctx context.Context, cmds ...Command) (*SyncResult, error) {
	payload, err := json.Marshal(cmds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync commands: %w", err)
	}

	var res SyncResult
	if err := c.syncPost(ctx, url.Values{"commands": {string(payload)}}, &res); err != nil {
		return nil, err
	}

	for _, cmd := range cmds {
		raw, ok := res.SyncStatus[cmd.UUID]
		if !ok {
			return nil, fmt.Errorf("%w: %s: no status returned", repository.ErrSyncCommand, cmd.Type)
		}
		var status string
		if json.Unmarshal(raw, &status) == nil && status == "ok" {
			continue
		}
		var se syncError
		if err := json.Unmarshal(raw, &se); err == nil && se.Error != "" {
			return nil, fmt.Errorf("%w: %s: %s (code %d)", repository.ErrSyncCommand, cmd.Type, se.Error, se.ErrorCode)
		}
		return nil, fmt.Errorf("%w: %s: %s", repository.ErrSyncCommand, cmd.Type, string(raw))
	}
	return &res, nil
}

// ListReminders reads all live reminders through a full sync of the reminders resource.
func (c *Client) ListReminders(ctx context.Context) ([]Reminder, error) {
	form := url.Values{
		"sync_token":     {"*"},
		"resource_types": {`["reminders"]`},
	}
	var resp struct {
		Reminders []Reminder `json:"reminders"`
	}
	if err := c.syncPost(ctx, form, &resp); err != nil {
		return nil, err
	}
	return resp.Reminders, nil
}
