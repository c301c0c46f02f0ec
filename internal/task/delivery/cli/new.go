package cli

import (
	"context"
	"io"
	"sync"

	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/task"
	pkgLog "todoist-agent-cli/pkg/log"
	"todoist-agent-cli/pkg/response"
)

// ProgramName prefixes every command in envelopes and hints.
const ProgramName = "td"

// Setup builds the logger and use case on first use. It runs after argument
// validation so usage errors never need credentials.
type Setup func(ctx context.Context, verbose bool) (pkgLog.Logger, task.UseCase, error)

// Handler runs one invocation of the CLI.
type Handler interface {
	// Execute runs args and returns the process exit code.
	Execute(ctx context.Context, args []string) int
}

type handler struct {
	setup  Setup
	stdout io.Writer
	stderr io.Writer

	verbose bool

	once sync.Once
	l    pkgLog.Logger
	uc   task.UseCase
	err  error
}

// New creates a CLI handler writing success documents to stdout and failures to stderr.
func New(setup Setup, stdout, stderr io.Writer) Handler {
	return &handler{
		setup:  setup,
		stdout: stdout,
		stderr: stderr,
		l:      pkgLog.NewNop(),
	}
}

func (h *handler) Execute(ctx context.Context, args []string) int {
	root := h.rootCmd()
	root.SetArgs(args)
	root.SetOut(h.stdout)
	root.SetErr(h.stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		h.l.Debugf(ctx, "cli.Execute: %v", err)
		_ = response.WriteError(h.stderr, mapError(err))
		return 1
	}
	return 0
}

// useCase runs Setup once.
func (h *handler) useCase(ctx context.Context) (task.UseCase, error) {
	h.once.Do(func() {
		l, uc, err := h.setup(ctx, h.verbose)
		if err != nil {
			h.err = err
			return
		}
		if l != nil {
			h.l = l
		}
		h.uc = uc
	})
	return h.uc, h.err
}

// emit writes the success envelope for verb.
func (h *handler) emit(cmd *cobra.Command, verb string, result any, next ...response.NextAction) error {
	return response.Write(cmd.OutOrStdout(), response.NewOK(ProgramName+" "+verb, result, next...))
}

func (h *handler) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           ProgramName,
		Short:         "Todoist from the command line, with JSON output",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return &UsageError{Usage: ProgramName + " <command> [args] [flags]", Problem: "missing command; run td --help for the list"}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&h.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		h.todayCmd(), h.inboxCmd(), h.searchCmd(), h.listCmd(), h.showCmd(),
		h.addCmd(), h.completeCmd(), h.reopenCmd(), h.deleteCmd(), h.updateCmd(), h.moveCmd(),
		h.commentsCmd(), h.commentAddCmd(), h.commentUpdateCmd(), h.commentDeleteCmd(),
		h.remindersCmd(), h.reminderAddCmd(), h.reminderDeleteCmd(),
		h.activityCmd(), h.completedCmd(),
		h.projectsCmd(), h.sectionsCmd(), h.labelsCmd(), h.addProjectCmd(), h.addSectionCmd(),
		h.reviewCmd(),
	)
	return root
}
