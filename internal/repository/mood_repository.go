package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type MoodRepositoryImpl struct {
	DB *sqlx.DB
}

func NewMoodRepository(db *sqlx.DB) *MoodRepositoryImpl {
	return &MoodRepositoryImpl{DB: db}
}

func (r *MoodRepositoryImpl) Create(ctx context.Context, entry *models.MoodEntry) error {
	query := `
        INSERT INTO mood_entries (mood_id, student_id, score, note, created_at)
        VALUES (:mood_id, :student_id, :score, :note, :created_at)
    `

	if entry.MoodID == "" {
		entry.MoodID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.DB.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}

	return nil
}

func (r *MoodRepositoryImpl) GetByStudentID(ctx context.Context, studentID string, limit int) ([]models.MoodEntry, error) {
	if limit < 1 || limit > 100 {
		limit = 30
	}

	query := `
        SELECT * FROM mood_entries
        WHERE student_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `

	entries := []models.MoodEntry{}
	err := r.DB.SelectContext(ctx, &entries, query, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}

	return entries, nil
}
