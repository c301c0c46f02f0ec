package cli

import "github.com/spf13/cobra"

func (h *handler) reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Daily review: today, inbox, overdue, undated and per-project counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := h.useCase(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Review(cmd.Context())
			if err != nil {
				return err
			}
			return h.emit(cmd, "review", newReviewResp(out), reviewHints()...)
		},
	}
}
