package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type LikeRepositoryImpl struct {
	DB *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{DB: db}
}

// Toggle flips the like for (postID, studentID): delete if present, insert
// otherwise. The check-then-act runs in a transaction and the table has a
// primary key on the pair, so two near-simultaneous toggles from the same
// student cannot both insert. A unique violation from the losing insert is
// retried once; by then the row exists and the retry takes the delete branch.
func (r *LikeRepositoryImpl) Toggle(ctx context.Context, postID, studentID string) (bool, error) {
	liked, err := r.toggleOnce(ctx, postID, studentID)
	if err != nil && isUniqueViolation(err) {
		liked, err = r.toggleOnce(ctx, postID, studentID)
		if err != nil {
			if isUniqueViolation(err) {
				return false, fmt.Errorf("like toggle for post %s: %w", postID, models.ErrConflict)
			}
			return false, err
		}
	}

	return liked, err
}

func (r *LikeRepositoryImpl) toggleOnce(ctx context.Context, postID, studentID string) (bool, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM post_likes WHERE post_id = $1 AND student_id = $2)`,
		postID, studentID)
	if err != nil {
		return false, fmt.Errorf("failed to check existing like: %w", err)
	}

	var liked bool
	if exists {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND student_id = $2`,
			postID, studentID)
		if err != nil {
			return false, fmt.Errorf("failed to remove like: %w", err)
		}
		liked = false
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO post_likes (post_id, student_id, created_at) VALUES ($1, $2, $3)`,
			postID, studentID, time.Now())
		if err != nil {
			return false, fmt.Errorf("failed to create like: %w", err)
		}
		liked = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit like toggle: %w", err)
	}

	return liked, nil
}

func (r *LikeRepositoryImpl) CountForPost(ctx context.Context, postID string) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM post_likes WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}

// LikedPostIDs returns which of the given posts the student has liked, as a
// set. One query for the whole feed page.
func (r *LikeRepositoryImpl) LikedPostIDs(ctx context.Context, studentID string, postIDs []string) (map[string]bool, error) {
	likedSet := make(map[string]bool, len(postIDs))
	if studentID == "" || len(postIDs) == 0 {
		return likedSet, nil
	}

	ids := []string{}
	err := r.DB.SelectContext(ctx, &ids,
		`SELECT post_id FROM post_likes WHERE student_id = $1 AND post_id = ANY($2)`,
		studentID, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked posts: %w", err)
	}

	for _, id := range ids {
		likedSet[id] = true
	}

	return likedSet, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
