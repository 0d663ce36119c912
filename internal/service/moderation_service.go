package service

import (
	"context"
	"fmt"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

// ModerationService owns the post status lifecycle: pending on creation,
// approved or declined by a moderator, either decision revertable to pending.
// Every operation requires an admin actor.
type ModerationService interface {
	ListPosts(ctx context.Context, actor Actor, status, search string) ([]models.Post, error)
	TransitionStatus(ctx context.Context, actor Actor, postID, action string) (*models.Post, error)
	DeletePost(ctx context.Context, actor Actor, postID string) error
	ComputeCounts(ctx context.Context, actor Actor) (*models.ModerationCounts, error)
}

type moderationService struct {
	postRepo repository.PostRepository
}

func NewModerationService(postRepo repository.PostRepository) ModerationService {
	return &moderationService{postRepo: postRepo}
}

func (s *moderationService) ListPosts(ctx context.Context, actor Actor, status, search string) ([]models.Post, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("moderation requires admin role: %w", models.ErrUnauthorized)
	}

	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, models.ErrValidation)
	}

	return s.postRepo.List(ctx, status, search)
}

// TransitionStatus applies a moderation action. Actions are idempotent from
// any prior state: approving an approved post is a successful no-op, and two
// moderators racing on the same button converge on the same final status
// without either seeing an error.
func (s *moderationService) TransitionStatus(ctx context.Context, actor Actor, postID, action string) (*models.Post, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("moderation requires admin role: %w", models.ErrUnauthorized)
	}

	status, ok := models.StatusForAction(action)
	if !ok {
		return nil, fmt.Errorf("unknown moderation action %q: %w", action, models.ErrValidation)
	}

	post, err := s.postRepo.UpdateStatus(ctx, postID, status)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the post together with its comments and likes.
// Deleting an already-deleted post succeeds, so a moderator retrying a
// timed-out delete does not get an error for work that is already done.
func (s *moderationService) DeletePost(ctx context.Context, actor Actor, postID string) error {
	if !actor.IsAdmin {
		return fmt.Errorf("moderation requires admin role: %w", models.ErrUnauthorized)
	}

	_, err := s.postRepo.Delete(ctx, postID)
	return err
}

func (s *moderationService) ComputeCounts(ctx context.Context, actor Actor) (*models.ModerationCounts, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("moderation requires admin role: %w", models.ErrUnauthorized)
	}

	return s.postRepo.CountByStatus(ctx)
}
