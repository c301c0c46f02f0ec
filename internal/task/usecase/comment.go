package usecase

import (
	"context"
	"fmt"
	"strings"

	"todoist-agent-cli/internal/model"
	"todoist-agent-cli/internal/task"
	"todoist-agent-cli/internal/task/repository"
)

func (uc *implUseCase) Comments(ctx context.Context, input task.CommentsInput) (task.CommentsOutput, error) {
	var (
		out task.CommentsOutput
		opt repository.ListCommentsOptions
	)
	if input.OnProject {
		p, err := uc.resolver.ResolveProject(ctx, input.Ref)
		if err != nil {
			return out, err
		}
		out.ProjectID, opt.ProjectID = p.ID, p.ID
	} else {
		t, err := uc.resolver.ResolveTask(ctx, input.Ref)
		if err != nil {
			return out, err
		}
		out.TaskID, opt.TaskID = t.ID, t.ID
	}

	comments, err := uc.repo.ListComments(ctx, opt)
	if err != nil {
		return out, fmt.Errorf("list comments: %w", err)
	}
	out.Comments = comments
	return out, nil
}

func (uc *implUseCase) AddComment(ctx context.Context, input task.AddCommentInput) (model.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return model.Comment{}, task.ErrEmptyContent
	}

	opt := repository.CreateCommentOptions{Content: content}
	if input.OnProject {
		p, err := uc.resolver.ResolveProject(ctx, input.Ref)
		if err != nil {
			return model.Comment{}, err
		}
		opt.ProjectID = p.ID
	} else {
		t, err := uc.resolver.ResolveTask(ctx, input.Ref)
		if err != nil {
			return model.Comment{}, err
		}
		opt.TaskID = t.ID
	}

	c, err := uc.repo.CreateComment(ctx, opt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (uc *implUseCase) UpdateComment(ctx context.Context, id, content string) (model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Comment{}, task.ErrEmptyContent
	}
	c, err := uc.repo.UpdateComment(ctx, strings.TrimSpace(id), content)
	if err != nil {
		return model.Comment{}, fmt.Errorf("update comment %s: %w", id, err)
	}
	return c, nil
}

func (uc *implUseCase) DeleteComment(ctx context.Context, id string) error {
	if err := uc.repo.DeleteComment(ctx, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	return nil
}
