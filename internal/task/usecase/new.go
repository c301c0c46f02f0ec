package usecase

import (
	"time"

	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
	"todoist-agent-cli/pkg/datemath"
	pkgLog "todoist-agent-cli/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	resolver *resolver.Resolver
	dateMath *datemath.Parser
	now      func() time.Time
}

// Option customises the use case.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	res *resolver.Resolver,
	dateMath *datemath.Parser,
	opts ...Option,
) task.UseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		resolver: res,
		dateMath: dateMath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
