// Package credential acquires the Todoist API token.
package credential

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const DefaultLeaseTimeout = 5 * time.Second

var ErrCredentialMissing = errors.New("todoist API token not available")

// Invoker obtains a token from an external process.
type Invoker interface {
	Invoke(ctx context.Context) (string, error)
}

// ExecInvoker runs a command and reads the token from its stdout.
type ExecInvoker struct {
	Command string
}

func (e ExecInvoker) Invoke(ctx context.Context) (string, error) {
	args := strings.Fields(e.Command)
	if len(args) == 0 {
		return "", errors.New("no lease command configured")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("%s: %w", args[0], err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// Provider checks EnvVar first, then asks Lease within Timeout.
type Provider struct {
	EnvVar  string
	Lease   Invoker
	Timeout time.Duration
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Token returns a non-empty token or an error wrapping ErrCredentialMissing.
func (p Provider) Token(ctx context.Context) (string, error) {
	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if p.EnvVar != "" {
		if v, ok := lookup(p.EnvVar); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), nil
		}
	}

	var leaseErr error
	if p.Lease != nil {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = DefaultLeaseTimeout
		}
		lctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		tok, err := p.Lease.Invoke(lctx)
		switch {
		case err != nil:
			leaseErr = err
		case tok == "":
			leaseErr = errors.New("lease returned an empty token")
		default:
			return tok, nil
		}
	}

	return "", p.missing(leaseErr)
}

func (p Provider) missing(cause error) error {
	hint := fmt.Sprintf("set %s to a token from https://app.todoist.com/app/settings/integrations/developer", p.EnvVar)
	if cause != nil {
		return fmt.Errorf("%w (secret lease failed: %v); %s", ErrCredentialMissing, cause, hint)
	}
	return fmt.Errorf("%w; %s", ErrCredentialMissing, hint)
}
