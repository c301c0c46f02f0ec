package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

// Review fetches today's tasks, all tasks and all projects concurrently, then
// partitions the full listing. Nothing is modified.
func (uc *implUseCase) Review(ctx context.Context) (task.ReviewOutput, error) {
	var (
		today    []model.Task
		all      []model.Task
		projects []model.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = uc.repo.ListTasks(gctx, repository.ListTasksOptions{Filter: task.TodayFilter})
		if err != nil {
			return fmt.Errorf("list today: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		all, err = uc.repo.ListTasks(gctx, repository.ListTasksOptions{})
		if err != nil {
			return fmt.Errorf("list tasks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		projects, err = uc.repo.ListProjects(gctx)
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return task.ReviewOutput{}, err
	}

	out := task.ReviewOutput{
		Today:   today,
		Inbox:   []model.Task{},
		Overdue: []model.Task{},
	}
	inbox, hasInbox := findInbox(projects)
	now := uc.now()

	counts := make(map[string]int, len(projects))
	for _, t := range all {
		counts[t.ProjectID]++
		if hasInbox && t.ProjectID == inbox.ID {
			out.Inbox = append(out.Inbox, t)
		}
		if !t.HasDue() {
			out.FloatingCount++
			continue
		}
		if uc.dateMath.DayBefore(t.DueDay(), now) {
			out.Overdue = append(out.Overdue, t)
		}
	}

	out.Projects = make([]task.ProjectCount, 0, len(projects))
	for _, p := range projects {
		if p.IsInbox {
			continue
		}
		out.Projects = append(out.Projects, task.ProjectCount{Project: p, TaskCount: counts[p.ID]})
	}

	uc.l.Debugf(ctx, "task.usecase.Review: %d tasks, %d overdue, %d floating", len(all), len(out.Overdue), out.FloatingCount)
	return out, nil
}
