package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, content, is_anonymous, status, created_at)
        VALUES
        (:post_id, :author_id, :content, :is_anonymous, :status, :created_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Status == "" {
		post.Status = models.StatusPending
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	_, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// List returns posts, optionally filtered by status and/or a free-text search
// on content. Canonical order: most recent first, ties broken by post_id so
// two refreshes of the same data render identically.
func (r *PostRepositoryImpl) List(ctx context.Context, status, search string) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE ($1 = '' OR status = $1)
          AND ($2 = '' OR content ILIKE '%' || $2 || '%')
        ORDER BY created_at DESC, post_id ASC
    `

	posts := []models.Post{}
	err := r.DB.SelectContext(ctx, &posts, query, status, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// UpdateStatus sets the status unconditionally. There is no status
// precondition in the WHERE clause: two racing moderators issuing the same
// action both succeed and converge on the same row state.
func (r *PostRepositoryImpl) UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error) {
	query := `
        UPDATE posts SET status = $1
        WHERE post_id = $2
        RETURNING *
    `

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, status, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update post status: %w", err)
	}

	return &post, nil
}

// Delete removes the post and, in the same transaction, its comments and
// likes. Returns whether the post existed; a repeated delete is not an error
// here, the caller decides how to report it.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = $1`, postID); err != nil {
		return false, fmt.Errorf("failed to delete post likes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE post_id = $1`, postID); err != nil {
		return false, fmt.Errorf("failed to delete post comments: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}

	return rowsAffected > 0, nil
}

// CountByStatus recomputes the moderation counters from the posts table on
// every call. Nothing incremental, nothing cached: the counts can never
// disagree with the lists they sit next to.
func (r *PostRepositoryImpl) CountByStatus(ctx context.Context) (*models.ModerationCounts, error) {
	query := `
        SELECT
            COUNT(*) FILTER (WHERE status = 'pending')  AS pending,
            COUNT(*) FILTER (WHERE status = 'approved') AS approved,
            COUNT(*) FILTER (WHERE status = 'declined') AS declined,
            COUNT(*)                                    AS total
        FROM posts
    `

	var counts models.ModerationCounts
	err := r.DB.GetContext(ctx, &counts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts by status: %w", err)
	}

	return &counts, nil
}

// CountsForPosts fetches like and comment counts for a batch of posts in one
// round trip, so the feed projection never issues a query per post.
func (r *PostRepositoryImpl) CountsForPosts(ctx context.Context, postIDs []string) (map[string]models.PostEngagement, error) {
	counts := make(map[string]models.PostEngagement, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	query := `
        SELECT p.post_id,
               (SELECT COUNT(*) FROM post_likes l WHERE l.post_id = p.post_id) AS like_count,
               (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.post_id)   AS comment_count
        FROM posts p
        WHERE p.post_id = ANY($1)
    `

	rows := []models.PostEngagement{}
	err := r.DB.SelectContext(ctx, &rows, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engagement counts: %w", err)
	}

	for _, row := range rows {
		counts[row.PostID] = row
	}

	return counts, nil
}
