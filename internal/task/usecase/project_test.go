package usecase_test

import (
	"context"
	"errors"
	"testing"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/resolver"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
	"todoist-agent-cli/internal/task/repository/repotest"
)

func TestSections(t *testing.T) {
	ctx := context.Background()

	t.Run("All Sections Without Project", func(t *testing.T) {
		var gotProject = "unset"
		fake := &repotest.Fake{
			ListSectionsFunc: func(projectID string) ([]model.Section, error) {
				gotProject = projectID
				return []model.Section{{ID: "s1", Name: "Backlog", ProjectID: "p-work"}}, nil
			},
		}
		sections, err := newUseCase(t, fake).Sections(ctx, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotProject != "" || len(sections) != 1 {
			t.Errorf("expected unfiltered listing, got project %q and %d sections", gotProject, len(sections))
		}
		if fake.Called("ListProjects") {
			t.Errorf("no project resolution expected")
		}
	})

	t.Run("Resolves Project By Name", func(t *testing.T) {
		var gotProject string
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			ListSectionsFunc: func(projectID string) ([]model.Section, error) {
				gotProject = projectID
				return nil, nil
			},
		}
		if _, err := newUseCase(t, fake).Sections(ctx, "Home"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotProject != "p-home" {
			t.Errorf("expected p-home, got %q", gotProject)
		}
	})
}

func TestAddProject(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Name", func(t *testing.T) {
		fake := &repotest.Fake{}
		_, err := newUseCase(t, fake).AddProject(ctx, task.AddProjectInput{Name: "  "})
		if !errors.Is(err, task.ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
		if len(fake.Calls()) != 0 {
			t.Errorf("no remote call expected, got %v", fake.Calls())
		}
	})

	t.Run("Resolves Parent", func(t *testing.T) {
		var got repository.CreateProjectOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			CreateProjectFunc: func(opt repository.CreateProjectOptions) (model.Project, error) {
				got = opt
				return model.Project{ID: "p-new", Name: opt.Name, ParentID: opt.ParentID}, nil
			},
		}
		p, err := newUseCase(t, fake).AddProject(ctx, task.AddProjectInput{
			Name:      " Garden ",
			Color:     "green",
			Favorite:  true,
			ParentRef: "home",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Garden" || got.ParentID != "p-home" || got.Color != "green" || !got.IsFavorite {
			t.Errorf("unexpected create options %+v", got)
		}
		if p.ID != "p-new" {
			t.Errorf("expected p-new, got %q", p.ID)
		}
	})
}

func TestAddSection(t *testing.T) {
	ctx := context.Background()

	t.Run("Ambiguous Project Stops Before Create", func(t *testing.T) {
		fake := &repotest.Fake{
			ListProjectsFunc: func() ([]model.Project, error) {
				return []model.Project{{ID: "a", Name: "Work A"}, {ID: "b", Name: "Work B"}}, nil
			},
		}
		_, err := newUseCase(t, fake).AddSection(ctx, task.AddSectionInput{Name: "Later", ProjectRef: "work"})
		var amb *resolver.AmbiguousError
		if !errors.As(err, &amb) {
			t.Fatalf("expected AmbiguousError, got %v", err)
		}
		if fake.Called("CreateSection") {
			t.Errorf("section must not be created")
		}
	})

	t.Run("Creates In Resolved Project", func(t *testing.T) {
		var got repository.CreateSectionOptions
		fake := &repotest.Fake{
			ListProjectsFunc: listProjects,
			CreateSectionFunc: func(opt repository.CreateSectionOptions) (model.Section, error) {
				got = opt
				return model.Section{ID: "s9", Name: opt.Name, ProjectID: opt.ProjectID}, nil
			},
		}
		s, err := newUseCase(t, fake).AddSection(ctx, task.AddSectionInput{Name: "Later", ProjectRef: "Work"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ProjectID != "p-work" || s.ID != "s9" {
			t.Errorf("unexpected section %+v from options %+v", s, got)
		}
	})
}
