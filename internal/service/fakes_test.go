package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

// In-memory fakes for the repository interfaces. They reproduce the store's
// observable behavior (filtering, canonical ordering, the like uniqueness
// invariant) so service tests can assert on state across sequences of calls.

type fakePostRepo struct {
	posts    map[string]models.Post
	comments map[string][]models.Comment
	likes    map[string]map[string]bool
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{
		posts:    map[string]models.Post{},
		comments: map[string][]models.Comment{},
		likes:    map[string]map[string]bool{},
	}
}

func (f *fakePostRepo) addPost(id, authorID, content, status string, createdAt time.Time, anonymous bool) {
	f.posts[id] = models.Post{
		PostID:      id,
		AuthorID:    authorID,
		Content:     content,
		IsAnonymous: anonymous,
		Status:      status,
		CreatedAt:   createdAt,
	}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = fmt.Sprintf("post-%d", len(f.posts)+1)
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	f.posts[post.PostID] = *post
	return nil
}

func (f *fakePostRepo) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
	}
	return &post, nil
}

func (f *fakePostRepo) List(ctx context.Context, status, search string) ([]models.Post, error) {
	posts := []models.Post{}
	for _, post := range f.posts {
		if status != "" && post.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(post.Content), strings.ToLower(search)) {
			continue
		}
		posts = append(posts, post)
	}

	// canonical order: created_at DESC, post_id ASC
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].PostID < posts[j].PostID
	})

	return posts, nil
}

func (f *fakePostRepo) UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
	}
	post.Status = status
	f.posts[postID] = post
	return &post, nil
}

func (f *fakePostRepo) Delete(ctx context.Context, postID string) (bool, error) {
	_, ok := f.posts[postID]
	delete(f.posts, postID)
	delete(f.comments, postID)
	delete(f.likes, postID)
	return ok, nil
}

func (f *fakePostRepo) CountByStatus(ctx context.Context) (*models.ModerationCounts, error) {
	counts := models.ModerationCounts{}
	for _, post := range f.posts {
		switch post.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusApproved:
			counts.Approved++
		case models.StatusDeclined:
			counts.Declined++
		}
		counts.Total++
	}
	return &counts, nil
}

func (f *fakePostRepo) CountsForPosts(ctx context.Context, postIDs []string) (map[string]models.PostEngagement, error) {
	counts := map[string]models.PostEngagement{}
	for _, id := range postIDs {
		counts[id] = models.PostEngagement{
			PostID:       id,
			LikeCount:    len(f.likes[id]),
			CommentCount: len(f.comments[id]),
		}
	}
	return counts, nil
}

type fakeCommentRepo struct {
	posts *fakePostRepo
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = fmt.Sprintf("comment-%d", len(f.posts.comments[comment.PostID])+1)
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.posts.comments[comment.PostID] = append(f.posts.comments[comment.PostID], *comment)
	return nil
}

func (f *fakeCommentRepo) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	return f.posts.comments[postID], nil
}

type fakeLikeRepo struct {
	posts *fakePostRepo
}

func (f *fakeLikeRepo) Toggle(ctx context.Context, postID, studentID string) (bool, error) {
	if f.posts.likes[postID] == nil {
		f.posts.likes[postID] = map[string]bool{}
	}
	if f.posts.likes[postID][studentID] {
		delete(f.posts.likes[postID], studentID)
		return false, nil
	}
	f.posts.likes[postID][studentID] = true
	return true, nil
}

func (f *fakeLikeRepo) CountForPost(ctx context.Context, postID string) (int, error) {
	return len(f.posts.likes[postID]), nil
}

func (f *fakeLikeRepo) LikedPostIDs(ctx context.Context, studentID string, postIDs []string) (map[string]bool, error) {
	likedSet := map[string]bool{}
	for _, id := range postIDs {
		if f.posts.likes[id][studentID] {
			likedSet[id] = true
		}
	}
	return likedSet, nil
}

type fakeStudentRepo struct {
	names map[string]string
}

func (f *fakeStudentRepo) GetNamesByIDs(ctx context.Context, studentIDs []string) (map[string]string, error) {
	names := map[string]string{}
	for _, id := range studentIDs {
		if name, ok := f.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

// The feed service only uses GetNamesByIDs; the rest of the interface is
// unused in these tests.
func (f *fakeStudentRepo) CreateStudent(ctx context.Context, student *models.Student, password string) error {
	return nil
}

func (f *fakeStudentRepo) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	return nil, models.ErrNotFound
}

func (f *fakeStudentRepo) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	return nil, models.ErrNotFound
}

func (f *fakeStudentRepo) VerifyPassword(ctx context.Context, email, password string) (*models.Student, error) {
	return nil, models.ErrUnauthorized
}

func (f *fakeStudentRepo) UpdateProfile(ctx context.Context, studentID, fullName string) error {
	return nil
}

func (f *fakeStudentRepo) UpdateAvatarURL(ctx context.Context, studentID, avatarURL string) error {
	return nil
}

func (f *fakeStudentRepo) UpdatePassword(ctx context.Context, studentID, newPassword string) error {
	return nil
}

func (f *fakeStudentRepo) UpdateRefreshToken(ctx context.Context, studentID, refreshToken string, expiryTime time.Time) error {
	return nil
}

func (f *fakeStudentRepo) GetStudentByRefreshToken(ctx context.Context, refreshToken string) (*models.Student, error) {
	return nil, models.ErrUnauthorized
}

func (f *fakeStudentRepo) ListStudentsWithStats(ctx context.Context) ([]models.StudentWithStats, error) {
	return nil, nil
}

func (f *fakeStudentRepo) SetAdmin(ctx context.Context, studentID string, isAdmin bool) error {
	return nil
}

func (f *fakeStudentRepo) DeleteStudent(ctx context.Context, studentID string) error {
	return nil
}
