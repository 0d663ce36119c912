package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

func newCommunityFixture() (*fakePostRepo, CommunityService) {
	postRepo := newFakePostRepo()
	return postRepo, NewCommunityService(postRepo, &fakeCommentRepo{posts: postRepo}, &fakeLikeRepo{posts: postRepo})
}

func TestCreatePost_StartsPending(t *testing.T) {
	_, svc := newCommunityFixture()

	post, err := svc.CreatePost(context.Background(), "s1", "today was hard but I made it", true)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, post.Status)
	assert.True(t, post.IsAnonymous)
	assert.NotEmpty(t, post.PostID)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	_, svc := newCommunityFixture()

	tests := []string{"", "   ", "\t\n "}
	for _, content := range tests {
		_, err := svc.CreatePost(context.Background(), "s1", content, false)
		assert.ErrorIs(t, err, models.ErrValidation, "content %q", content)
	}
}

func TestCreatePost_RequiresAuthentication(t *testing.T) {
	_, svc := newCommunityFixture()

	_, err := svc.CreatePost(context.Background(), "", "hello", false)

	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestToggleLike_Determinism(t *testing.T) {
	postRepo, svc := newCommunityFixture()
	postRepo.addPost("p1", "s1", "hello", models.StatusApproved, time.Now(), false)

	// odd number of toggles ends liked, even ends unliked, count never negative
	for i := 1; i <= 7; i++ {
		liked, count, err := svc.ToggleLike(context.Background(), "s2", "p1")
		require.NoError(t, err)

		wantLiked := i%2 == 1
		assert.Equal(t, wantLiked, liked, "toggle %d", i)
		if wantLiked {
			assert.Equal(t, 1, count)
		} else {
			assert.Equal(t, 0, count)
		}
		assert.GreaterOrEqual(t, count, 0)
	}
}

func TestToggleLike_CountsPerStudent(t *testing.T) {
	postRepo, svc := newCommunityFixture()
	postRepo.addPost("p1", "s1", "hello", models.StatusApproved, time.Now(), false)

	_, _, err := svc.ToggleLike(context.Background(), "s2", "p1")
	require.NoError(t, err)
	_, count, err := svc.ToggleLike(context.Background(), "s3", "p1")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	_, svc := newCommunityFixture()

	_, _, err := svc.ToggleLike(context.Background(), "s1", "missing")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateComment_EmptyContent(t *testing.T) {
	postRepo, svc := newCommunityFixture()
	postRepo.addPost("p1", "s1", "hello", models.StatusApproved, time.Now(), false)

	_, err := svc.CreateComment(context.Background(), "s2", "p1", "   ")

	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	_, svc := newCommunityFixture()

	_, err := svc.CreateComment(context.Background(), "s2", "missing", "nice post")

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateComment_AnyPostStatus(t *testing.T) {
	// comments are not moderated, a pending post can be commented on
	postRepo, svc := newCommunityFixture()
	postRepo.addPost("p1", "s1", "hello", models.StatusPending, time.Now(), false)

	comment, err := svc.CreateComment(context.Background(), "s2", "p1", "hang in there")

	require.NoError(t, err)
	assert.Equal(t, "p1", comment.PostID)

	comments, err := svc.GetComments(context.Background(), "p1")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}
