package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type JournalRepositoryImpl struct {
	DB *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) *JournalRepositoryImpl {
	return &JournalRepositoryImpl{DB: db}
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, journal *models.Journal) error {
	query := `
        INSERT INTO journals (journal_id, student_id, title, content, created_at, updated_at)
        VALUES (:journal_id, :student_id, :title, :content, :created_at, :updated_at)
    `

	if journal.JournalID == "" {
		journal.JournalID = uuid.New().String()
	}

	now := time.Now()
	journal.CreatedAt = now
	journal.UpdatedAt = now

	_, err := r.DB.NamedExecContext(ctx, query, journal)
	if err != nil {
		return fmt.Errorf("failed to create journal: %w", err)
	}

	return nil
}

func (r *JournalRepositoryImpl) GetByID(ctx context.Context, journalID string) (*models.Journal, error) {
	query := `SELECT * FROM journals WHERE journal_id = $1`

	var journal models.Journal
	err := r.DB.GetContext(ctx, &journal, query, journalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("journal %s: %w", journalID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get journal: %w", err)
	}

	return &journal, nil
}

func (r *JournalRepositoryImpl) GetByStudentID(ctx context.Context, studentID string) ([]models.Journal, error) {
	query := `
        SELECT * FROM journals
        WHERE student_id = $1
        ORDER BY created_at DESC
    `

	journals := []models.Journal{}
	err := r.DB.SelectContext(ctx, &journals, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}

	return journals, nil
}

// Update is owner-scoped: the student_id in the WHERE clause means another
// student's journal id silently updates nothing and reports not found.
func (r *JournalRepositoryImpl) Update(ctx context.Context, journal *models.Journal) error {
	query := `
		UPDATE journals SET
			title = :title,
			content = :content,
			updated_at = :updated_at
		WHERE journal_id = :journal_id AND student_id = :student_id
	`

	journal.UpdatedAt = time.Now()

	result, err := r.DB.NamedExecContext(ctx, query, journal)
	if err != nil {
		return fmt.Errorf("failed to update journal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("journal %s: %w", journal.JournalID, models.ErrNotFound)
	}

	return nil
}

func (r *JournalRepositoryImpl) Delete(ctx context.Context, journalID, studentID string) error {
	query := `DELETE FROM journals WHERE journal_id = $1 AND student_id = $2`

	result, err := r.DB.ExecContext(ctx, query, journalID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete journal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("journal %s: %w", journalID, models.ErrNotFound)
	}

	return nil
}
