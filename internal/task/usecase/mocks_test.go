package usecase_test

import (
	"context"
	"testing"
	"time"

	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository/repotest"
	"todoist-agent-cli/internal/task/usecase"
	"todoist-agent-cli/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fixedNow is Thursday 15 October 2026, mid-morning UTC.
var fixedNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, fake *repotest.Fake) task.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	l := &mockLogger{}
	return usecase.New(l, fake, resolver.New(l, fake), dm, usecase.WithClock(func() time.Time { return fixedNow }))
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
