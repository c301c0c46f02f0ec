package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todoist-agent-cli/config"
	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task"
	cliDelivery "todoist-agent-cli/internal/task/delivery/cli"
	todoistRepo "todoist-agent-cli/internal/task/repository/todoist"
	"todoist-agent-cli/internal/task/usecase"
	"todoist-agent-cli/pkg/credential"
	"todoist-agent-cli/pkg/datemath"
	"todoist-agent-cli/pkg/log"
	"todoist-agent-cli/pkg/response"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		_ = response.WriteError(os.Stderr, fmt.Errorf("failed to load config: %w", err))
		return 1
	}

	// 2. Wiring, deferred until a command has validated its arguments
	setup := func(ctx context.Context, verbose bool) (log.Logger, task.UseCase, error) {
		level := cfg.Logger.Level
		if verbose {
			level = "debug"
		}
		logger := log.Init(log.ZapConfig{
			Level:        level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})

		dateMathParser, err := datemath.NewParser(cfg.Timezone)
		if err != nil {
			logger.Warnf(ctx, "Invalid timezone %q, falling back to Local: %v", cfg.Timezone, err)
			dateMathParser, _ = datemath.NewParser("Local")
		}

		creds := credential.Provider{
			EnvVar:  cfg.Todoist.TokenEnv,
			Lease:   credential.ExecInvoker{Command: cfg.Credential.LeaseCommand},
			Timeout: cfg.Credential.LeaseTimeout,
		}
		token, err := creds.Token(ctx)
		if err != nil {
			return logger, nil, err
		}

		client := todoistRepo.NewClient(todoistRepo.ClientConfig{
			RESTURL:           cfg.Todoist.RESTURL,
			SyncURL:           cfg.Todoist.SyncURL,
			Token:             token,
			Timeout:           cfg.Todoist.Timeout,
			RequestsPerMinute: cfg.Todoist.RequestsPerMinute,
		})
		repo := todoistRepo.New(client, logger)
		logger.Debugf(ctx, "Todoist REST %s, Sync %s", cfg.Todoist.RESTURL, cfg.Todoist.SyncURL)

		return logger, usecase.New(logger, repo, resolver.New(logger, repo), dateMathParser), nil
	}

	// 3. Dispatch
	return cliDelivery.New(setup, os.Stdout, os.Stderr).Execute(ctx, args)
}
