package cli

import (
	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/pkg/datemath"
)

func (h *handler) remindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders <task-ref>",
		Short: "List a task's reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Reminders(cmd.Context(), ref)
			if err != nil {
				return err
			}
			return h.emit(cmd, "reminders", newReminderListResp(out), reminderHints(out.Task.ID)...)
		},
	}
}

func (h *handler) reminderAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder-add <task-ref>",
		Short: "Add a reminder relative to the due time or at an absolute time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}
			if changedCount(cmd, "before", "at") != 1 {
				return badFlag(cmd.UseLine(), "pass exactly one of --before <duration> or --at <datetime>")
			}

			in := task.AddReminderInput{Ref: ref}
			f := cmd.Flags()
			if f.Changed("before") {
				raw, _ := f.GetString("before")
				minutes, err := datemath.ParseMinutes(raw)
				if err != nil {
					return badFlag(cmd.UseLine(), "--before: %v", err)
				}
				in.BeforeMinutes = &minutes
			} else {
				in.At, _ = f.GetString("at")
				if in.At == "" {
					return badFlag(cmd.UseLine(), "--at needs a datetime such as 2026-10-16T09:00:00")
				}
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.AddReminder(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "reminder-add", newReminderResp(out.Reminder), reminderHints(out.Task.ID)...)
		},
	}
	cmd.Flags().String("before", "", "minutes before due: 30m, 1h, 2h30m or bare minutes")
	cmd.Flags().String("at", "", "absolute time, e.g. 2026-10-16T09:00:00")
	return cmd
}

func (h *handler) reminderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminder-delete <reminder-id>",
		Short: "Delete a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := arg(cmd, args, 0, "<reminder-id>")
			if err != nil {
				return err
			}
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			if err := uc.DeleteReminder(cmd.Context(), id); err != nil {
				return err
			}
			return h.emit(cmd, "reminder-delete", statusResp{ID: id, Status: "deleted"})
		},
	}
}
