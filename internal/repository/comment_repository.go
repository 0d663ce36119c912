package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type CommentRepositoryImpl struct {
	DB *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{DB: db}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
        INSERT INTO comments (comment_id, post_id, author_id, content, created_at)
        VALUES (:comment_id, :post_id, :author_id, :content, :created_at)
    `

	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	_, err := r.DB.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// Comments render oldest first under a post, unlike the post lists.
func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	query := `
        SELECT * FROM comments
        WHERE post_id = $1
        ORDER BY created_at ASC
    `

	comments := []models.Comment{}
	err := r.DB.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return comments, nil
}
