package cli

import (
	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/task"
)

func (h *handler) commentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments <ref>",
		Short: "List comments of a task, or of a project with --project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<ref>")
			if err != nil {
				return err
			}
			onProject, _ := cmd.Flags().GetBool("project")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Comments(cmd.Context(), task.CommentsInput{Ref: ref, OnProject: onProject})
			if err != nil {
				return err
			}
			return h.emit(cmd, "comments", newCommentListResp(out), commentHints(parentRef(out.TaskID, out.ProjectID), onProject)...)
		},
	}
	cmd.Flags().Bool("project", false, "treat <ref> as a project reference")
	return cmd
}

func (h *handler) commentAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment-add <ref> <text>",
		Short: "Comment on a task, or on a project with --project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := arg(cmd, args, 0, "<ref>")
			if err != nil {
				return err
			}
			text, err := arg(cmd, args, 1, "<text>")
			if err != nil {
				return err
			}
			onProject, _ := cmd.Flags().GetBool("project")

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			c, err := uc.AddComment(cmd.Context(), task.AddCommentInput{Ref: ref, OnProject: onProject, Content: text})
			if err != nil {
				return err
			}
			return h.emit(cmd, "comment-add", newCommentResp(c), commentHints(parentRef(c.TaskID, c.ProjectID), onProject)...)
		},
	}
	cmd.Flags().Bool("project", false, "treat <ref> as a project reference")
	return cmd
}

func (h *handler) commentUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment-update <comment-id> <text>",
		Short: "Replace a comment's text",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := arg(cmd, args, 0, "<comment-id>")
			if err != nil {
				return err
			}
			text, err := arg(cmd, args, 1, "<text>")
			if err != nil {
				return err
			}

			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			c, err := uc.UpdateComment(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			return h.emit(cmd, "comment-update", newCommentResp(c), commentHints(parentRef(c.TaskID, c.ProjectID), c.TaskID == "")...)
		},
	}
}

func (h *handler) commentDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment-delete <comment-id>",
		Short: "Delete a comment",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := arg(cmd, args, 0, "<comment-id>")
			if err != nil {
				return err
			}
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			if err := uc.DeleteComment(cmd.Context(), id); err != nil {
				return err
			}
			return h.emit(cmd, "comment-delete", statusResp{ID: id, Status: "deleted"})
		},
	}
}

// parentRef returns an id: reference to whichever parent is set.
func parentRef(taskID, projectID string) string {
	if taskID != "" {
		return idRef(taskID)
	}
	return idRef(projectID)
}
