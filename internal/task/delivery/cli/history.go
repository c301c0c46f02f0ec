package cli

import (
	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/task"
)

const defaultHistoryLimit = 30

func (h *handler) activityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Recent account activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in task.ActivityInput
			f := cmd.Flags()
			in.Limit, _ = f.GetInt("limit")
			in.ObjectType, _ = f.GetString("object-type")
			in.EventType, _ = f.GetString("event-type")
			if in.Limit <= 0 {
				return badFlag(cmd.UseLine(), "--limit must be positive, got %d", in.Limit)
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			events, err := uc.Activity(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "activity", newActivityListResp(events), historyHints()...)
		},
	}
	f := cmd.Flags()
	f.Int("limit", defaultHistoryLimit, "maximum number of events")
	f.String("object-type", "", "item, project, note, ...")
	f.String("event-type", "", "added, updated, completed, deleted, ...")
	return cmd
}

func (h *handler) completedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completed",
		Short: "Completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in task.CompletedInput
			f := cmd.Flags()
			in.Since, _ = f.GetString("since")
			in.Until, _ = f.GetString("until")
			in.ProjectRef, _ = f.GetString("project")
			in.Limit, _ = f.GetInt("limit")
			if in.Limit <= 0 {
				return badFlag(cmd.UseLine(), "--limit must be positive, got %d", in.Limit)
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			items, err := uc.Completed(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "completed", newCompletedListResp(items), historyHints()...)
		},
	}
	f := cmd.Flags()
	f.String("since", "", "today, yesterday, \"3 days ago\" or YYYY-MM-DD")
	f.String("until", "", "today, yesterday, \"3 days ago\" or YYYY-MM-DD")
	f.String("project", "", "project reference")
	f.Int("limit", defaultHistoryLimit, "maximum number of tasks")
	return cmd
}
