package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/pkg/response"
)

func (h *handler) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Tasks due today or overdue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := uc.Today(cmd.Context())
			if err != nil {
				return err
			}
			return h.emit(cmd, "today", newTaskListResp(tasks), taskListHints()...)
		},
	}
}

func (h *handler) inboxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inbox",
		Short: "Tasks in the inbox project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := uc.Inbox(cmd.Context())
			if err != nil {
				return err
			}
			return h.emit(cmd, "inbox", newTaskListResp(tasks), taskListHints()...)
		},
	}
}

func (h *handler) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text task search",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := arg(cmd, args, 0, "<query>"); err != nil {
				return err
			}
			query := strings.Join(args, " ")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := uc.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return h.emit(cmd, "search", searchResp{Query: query, Count: len(tasks), Tasks: newTaskResps(tasks)}, taskListHints()...)
		},
	}
}

func (h *handler) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active tasks, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in task.ListInput
			in.ProjectRef, _ = cmd.Flags().GetString("project")
			in.Label, _ = cmd.Flags().GetString("label")
			in.Filter, _ = cmd.Flags().GetString("filter")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			tasks, err := uc.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "list", newTaskListResp(tasks), taskListHints()...)
		},
	}
	cmd.Flags().String("project", "", "project name, URL or id:<id>")
	cmd.Flags().String("label", "", "label name")
	cmd.Flags().String("filter", "", "Todoist filter query, e.g. \"p1 & today\"")
	return cmd
}

func (h *handler) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task-ref>",
		Short: "Show one task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			t, err := uc.Show(cmd.Context(), ref)
			if err != nil {
				return err
			}
			return h.emit(cmd, "show", newTaskResp(t), taskHints(t.ID)...)
		},
	}
}

func (h *handler) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := arg(cmd, args, 0, "<content>")
			if err != nil {
				return err
			}

			in := task.AddInput{Content: content}
			f := cmd.Flags()
			in.Description, _ = f.GetString("description")
			in.Priority, _ = f.GetInt("priority")
			in.Due, _ = f.GetString("due")
			in.Deadline, _ = f.GetString("deadline")
			in.ProjectRef, _ = f.GetString("project")
			in.SectionID, _ = f.GetString("section")
			in.ParentRef, _ = f.GetString("parent")
			if f.Changed("priority") && !validPriority(in.Priority) {
				return badFlag(cmd.UseLine(), "--priority must be 1, 2, 3 or 4, got %d", in.Priority)
			}
			if f.Changed("labels") {
				labels, _ := f.GetString("labels")
				in.Labels = splitLabels(labels)
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			t, err := uc.Add(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "add", newTaskResp(t), addHints(t.ID)...)
		},
	}
	f := cmd.Flags()
	f.String("description", "", "task description")
	f.Int("priority", 0, "priority 1-4 (1 is the default, 4 the highest)")
	f.String("due", "", "due date in natural language, e.g. \"tomorrow 9am\"")
	f.String("deadline", "", "deadline as YYYY-MM-DD")
	f.String("labels", "", "comma-separated label names")
	f.String("project", "", "project name, URL or id:<id>")
	f.String("section", "", "section id")
	f.String("parent", "", "parent task reference")
	return cmd
}

// taskActionCmd builds complete, reopen and delete.
func (h *handler) taskActionCmd(
	verb, short, status string,
	op func(task.UseCase, context.Context, string) (model.Task, error),
	hints func(t model.Task) []response.NextAction,
) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <task-ref>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			t, err := op(uc, cmd.Context(), ref)
			if err != nil {
				return err
			}
			return h.emit(cmd, verb, statusResp{ID: t.ID, Content: t.Content, Status: status}, hints(t)...)
		},
	}
}

func (h *handler) completeCmd() *cobra.Command {
	return h.taskActionCmd("complete", "Mark a task done", "completed", task.UseCase.Complete,
		func(t model.Task) []response.NextAction { return completeHints(t.ID) })
}

func (h *handler) reopenCmd() *cobra.Command {
	return h.taskActionCmd("reopen", "Reopen a completed task", "reopened", task.UseCase.Reopen,
		func(t model.Task) []response.NextAction { return reopenHints(t.ID) })
}

func (h *handler) deleteCmd() *cobra.Command {
	return h.taskActionCmd("delete", "Delete a task", "deleted", task.UseCase.Delete,
		func(model.Task) []response.NextAction { return deleteHints() })
}

func (h *handler) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <task-ref>",
		Short: "Change a task's fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}

			in := task.UpdateInput{Ref: ref}
			f := cmd.Flags()
			if f.Changed("content") {
				v, _ := f.GetString("content")
				in.Content = &v
			}
			if f.Changed("description") {
				v, _ := f.GetString("description")
				in.Description = &v
			}
			if f.Changed("priority") {
				v, _ := f.GetInt("priority")
				if !validPriority(v) {
					return badFlag(cmd.UseLine(), "--priority must be 1, 2, 3 or 4, got %d", v)
				}
				in.Priority = &v
			}
			if f.Changed("due") {
				v, _ := f.GetString("due")
				in.Due = &v
			}
			if f.Changed("deadline") {
				v, _ := f.GetString("deadline")
				in.Deadline = &v
			}
			if f.Changed("labels") {
				v, _ := f.GetString("labels")
				in.Labels = splitLabels(v)
			}
			if in.Empty() {
				return badFlag(cmd.UseLine(), "nothing to update: pass at least one of --content, --description, --priority, --due, --deadline, --labels")
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			t, err := uc.Update(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "update", newTaskResp(t), taskHints(t.ID)...)
		},
	}
	f := cmd.Flags()
	f.String("content", "", "new content")
	f.String("description", "", "new description")
	f.Int("priority", 0, "priority 1-4")
	f.String("due", "", "due date in natural language; \"no date\" clears it")
	f.String("deadline", "", "deadline as YYYY-MM-DD")
	f.String("labels", "", "comma-separated label names; empty clears them")
	return cmd
}

func (h *handler) moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-ref>",
		Short: "Move a task to a project, section or parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<task-ref>")
			if err != nil {
				return err
			}
			if changedCount(cmd, "project", "section", "parent") != 1 {
				return badFlag(cmd.UseLine(), "pass exactly one of --project, --section, --parent")
			}

			in := task.MoveInput{Ref: ref}
			f := cmd.Flags()
			in.ProjectRef, _ = f.GetString("project")
			in.SectionID, _ = f.GetString("section")
			in.ParentRef, _ = f.GetString("parent")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			t, err := uc.Move(cmd.Context(), in)
			if err != nil {
				return err
			}
			return h.emit(cmd, "move", newTaskResp(t), taskHints(t.ID)...)
		},
	}
	f := cmd.Flags()
	f.String("project", "", "destination project reference")
	f.String("section", "", "destination section id")
	f.String("parent", "", "destination parent task reference")
	return cmd
}
