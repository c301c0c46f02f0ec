package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"todoist-agent-cli/internal/model"
)

// arg returns the i-th positional argument, or a usage error naming it.
func arg(cmd *cobra.Command, args []string, i int, name string) (string, error) {
	if i >= len(args) || strings.TrimSpace(args[i]) == "" {
		return "", missingArg(cmd.UseLine(), name)
	}
	return args[i], nil
}

// splitLabels turns "a, b,,c" into [a b c]. An empty string yields an empty, non-nil slice.
func splitLabels(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// changedCount counts how many of the named flags were given.
func changedCount(cmd *cobra.Command, names ...string) int {
	n := 0
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			n++
		}
	}
	return n
}

func validPriority(p int) bool {
	return p >= model.DefaultPriority && p <= model.HighestPriority
}
