package resolver

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task/repository"
	pkgLog "todoist-agent-cli/pkg/log"
)

// Resolver turns user references into tasks and projects.
type Resolver struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a Resolver backed by repo.
func New(l pkgLog.Logger, repo repository.Repository) *Resolver {
	return &Resolver{l: l, repo: repo}
}

// ResolveTask finds exactly one task for ref.
func (r *Resolver) ResolveTask(ctx context.Context, ref string) (model.Task, error) {
	return resolve(ctx, r, KindTask, ref, kindOps[model.Task]{
		get:    r.repo.GetTask,
		search: r.repo.SearchTasks,
		name:   func(t model.Task) string { return t.Content },
		id:     func(t model.Task) string { return t.ID },
	})
}

// ResolveProject finds exactly one project for ref. Candidates come from the full
// project listing since there is no server-side project search.
func (r *Resolver) ResolveProject(ctx context.Context, ref string) (model.Project, error) {
	return resolve(ctx, r, KindProject, ref, kindOps[model.Project]{
		get: r.repo.GetProject,
		search: func(ctx context.Context, _ string) ([]model.Project, error) {
			return r.repo.ListProjects(ctx)
		},
		name: func(p model.Project) string { return p.Name },
		id:   func(p model.Project) string { return p.ID },
	})
}

type kindOps[T any] struct {
	get    func(ctx context.Context, id string) (T, error)
	search func(ctx context.Context, query string) ([]T, error)
	name   func(T) string
	id     func(T) string
}

func resolve[T any](ctx context.Context, r *Resolver, kind Kind, raw string, ops kindOps[T]) (T, error) {
	var zero T

	ref := strings.TrimSpace(raw)
	if ref == "" {
		return zero, ErrEmptyReference
	}

	parsed := ParseRef(ref)
	if parsed.Type != RefQuery && parsed.ID == "" {
		return zero, ErrEmptyReference
	}
	switch parsed.Type {
	case RefURL:
		if parsed.Kind != kind {
			return zero, &WrongURLKindError{Want: kind, Got: parsed.Kind}
		}
		return fetch(ctx, kind, ref, parsed.ID, ops.get)
	case RefExplicitID:
		return fetch(ctx, kind, ref, parsed.ID, ops.get)
	}

	items, searchErr := ops.search(ctx, ref)
	if searchErr != nil {
		r.l.Debugf(ctx, "resolver.resolve: %s search for %q failed, trying raw id: %v", kind, ref, searchErr)
	} else {
		match, candidates := rank(items, ref, ops.name)
		if match != nil {
			return *match, nil
		}
		if len(candidates) > 1 {
			out := make([]Candidate, 0, MaxCandidates)
			for _, it := range candidates {
				if len(out) == MaxCandidates {
					break
				}
				out = append(out, Candidate{Name: ops.name(it), ID: ops.id(it)})
			}
			return zero, &AmbiguousError{Kind: kind, Ref: ref, Candidates: out}
		}
	}

	if LooksLikeID(ref) {
		item, err := ops.get(ctx, ref)
		if err == nil {
			return item, nil
		}
		r.l.Debugf(ctx, "resolver.resolve: raw id fetch %q failed: %v", ref, err)
	}

	return zero, &NotFoundError{Kind: kind, Ref: ref, Cause: searchErr}
}

func fetch[T any](ctx context.Context, kind Kind, ref, id string, get func(context.Context, string) (T, error)) (T, error) {
	item, err := get(ctx, id)
	if err != nil {
		var zero T
		return zero, &NotFoundError{Kind: kind, Ref: ref, Cause: fmt.Errorf("fetch %s %s: %w", kind, id, err)}
	}
	return item, nil
}

// rank applies exact then substring matching, case-insensitively.
// A unique match is returned directly; otherwise the substring matches are
// returned in input order.
func rank[T any](items []T, ref string, name func(T) string) (*T, []T) {
	needle := strings.ToLower(ref)

	var exact []int
	for i := range items {
		if strings.ToLower(name(items[i])) == needle {
			exact = append(exact, i)
		}
	}
	if len(exact) == 1 {
		return &items[exact[0]], nil
	}

	var partial []T
	for _, it := range items {
		if strings.Contains(strings.ToLower(name(it)), needle) {
			partial = append(partial, it)
		}
	}
	if len(partial) == 1 {
		return &partial[0], nil
	}
	return nil, partial
}
