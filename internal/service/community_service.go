package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

// CommunityService covers student-facing post interactions: submitting a
// post for approval, toggling a like and commenting.
type CommunityService interface {
	CreatePost(ctx context.Context, authorID, content string, isAnonymous bool) (*models.Post, error)
	ToggleLike(ctx context.Context, studentID, postID string) (bool, int, error)
	CreateComment(ctx context.Context, authorID, postID, content string) (*models.Comment, error)
	GetComments(ctx context.Context, postID string) ([]models.Comment, error)
}

type communityService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
}

func NewCommunityService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, likeRepo repository.LikeRepository) CommunityService {
	return &communityService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

// CreatePost submits a community post. New posts always start pending and
// become visible in the feed only after a moderator approves them.
func (s *communityService) CreatePost(ctx context.Context, authorID, content string, isAnonymous bool) (*models.Post, error) {
	if authorID == "" {
		return nil, fmt.Errorf("post creation requires an authenticated student: %w", models.ErrUnauthorized)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("post content is required: %w", models.ErrValidation)
	}

	post := &models.Post{
		AuthorID:    authorID,
		Content:     content,
		IsAnonymous: isAnonymous,
		Status:      models.StatusPending,
	}

	err := s.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// ToggleLike flips the viewer's like on a post and returns the new state
// together with the fresh like count.
func (s *communityService) ToggleLike(ctx context.Context, studentID, postID string) (bool, int, error) {
	if studentID == "" {
		return false, 0, fmt.Errorf("liking requires an authenticated student: %w", models.ErrUnauthorized)
	}

	// the post must exist; toggling a like on a deleted post is NotFound
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return false, 0, err
	}

	liked, err := s.likeRepo.Toggle(ctx, postID, studentID)
	if err != nil {
		return false, 0, err
	}

	count, err := s.likeRepo.CountForPost(ctx, postID)
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

// CreateComment adds a comment. Comments are not moderated, so the parent
// post's status does not matter, only its existence.
func (s *communityService) CreateComment(ctx context.Context, authorID, postID, content string) (*models.Comment, error) {
	if authorID == "" {
		return nil, fmt.Errorf("commenting requires an authenticated student: %w", models.ErrUnauthorized)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("comment content is required: %w", models.ErrValidation)
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *communityService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByPostID(ctx, postID)
}
