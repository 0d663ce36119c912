package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

const anonymousAuthorName = "Anonymous"

// FeedService projects approved posts into the public community feed.
// Posts in any other status are filtered out, never transformed.
type FeedService interface {
	ProjectPublicFeed(ctx context.Context, viewerID string) ([]models.FeedPost, error)
}

type feedService struct {
	postRepo    repository.PostRepository
	likeRepo    repository.LikeRepository
	studentRepo repository.StudentRepository
}

func NewFeedService(postRepo repository.PostRepository, likeRepo repository.LikeRepository, studentRepo repository.StudentRepository) FeedService {
	return &feedService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		studentRepo: studentRepo,
	}
}

func (s *feedService) ProjectPublicFeed(ctx context.Context, viewerID string) ([]models.FeedPost, error) {
	posts, err := s.postRepo.List(ctx, models.StatusApproved, "")
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, 0, len(posts))
	authorIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.PostID)
		if !post.IsAnonymous {
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	// batched lookups, one query each for the whole page
	engagement, err := s.postRepo.CountsForPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	likedSet, err := s.likeRepo.LikedPostIDs(ctx, viewerID, postIDs)
	if err != nil {
		return nil, err
	}

	authorNames, err := s.studentRepo.GetNamesByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		if post.Status != models.StatusApproved {
			continue
		}
		feed = append(feed, projectPost(post, authorNames[post.AuthorID], engagement[post.PostID], likedSet[post.PostID]))
	}

	return feed, nil
}

func projectPost(post models.Post, authorName string, engagement models.PostEngagement, likedByViewer bool) models.FeedPost {
	displayName := authorName
	if post.IsAnonymous || displayName == "" {
		displayName = anonymousAuthorName
	}

	return models.FeedPost{
		PostID:            post.PostID,
		DisplayAuthorName: displayName,
		IsAnonymous:       post.IsAnonymous,
		Content:           post.Content,
		CharCount:         CharCount(post.Content),
		WordCount:         WordCount(post.Content),
		LikeCount:         engagement.LikeCount,
		CommentCount:      engagement.CommentCount,
		LikedByViewer:     likedByViewer,
		CreatedAt:         post.CreatedAt,
	}
}

// CharCount counts characters of the raw content, whitespace included.
func CharCount(content string) int {
	return utf8.RuneCountInString(content)
}

// WordCount counts whitespace-delimited non-empty tokens: leading and
// trailing whitespace is ignored and runs of whitespace count as one split.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
