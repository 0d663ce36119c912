package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type studentRepository struct {
	db *sqlx.DB
}

type CreateStudentRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewStudentRepository(db *sqlx.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *models.Student, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	student.StudentID = uuid.New().String()
	student.PasswordHash = string(hashedPassword)
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO students
		(student_id, full_name, email, password_hash, is_admin, avatar_url, refresh_token, refresh_token_expiry_time, created_at)
		VALUES
		(:student_id, :full_name, :email, :password_hash, :is_admin, :avatar_url, :refresh_token, :refresh_token_expiry_time, :created_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return fmt.Errorf("email %s is already registered: %w", student.Email, models.ErrConflict)
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

func (r *studentRepository) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student

	query := `SELECT * FROM students WHERE student_id = $1`

	err := r.db.GetContext(ctx, &student, query, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student

	query := `SELECT * FROM students WHERE email = $1`

	err := r.db.GetContext(ctx, &student, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("student with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}

	return &student, nil
}

func (r *studentRepository) VerifyPassword(ctx context.Context, email, password string) (*models.Student, error) {
	student, err := r.GetStudentByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("incorrect password: %w", models.ErrUnauthorized)
	}

	return student, nil
}

func (r *studentRepository) UpdateProfile(ctx context.Context, studentID, fullName string) error {
	query := `UPDATE students SET full_name = $1 WHERE student_id = $2`

	result, err := r.db.ExecContext(ctx, query, fullName, studentID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
	}

	return nil
}

func (r *studentRepository) UpdateAvatarURL(ctx context.Context, studentID, avatarURL string) error {
	query := `UPDATE students SET avatar_url = $1 WHERE student_id = $2`

	result, err := r.db.ExecContext(ctx, query, avatarURL, studentID)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
	}

	return nil
}

func (r *studentRepository) UpdatePassword(ctx context.Context, studentID, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `UPDATE students SET password_hash = $1 WHERE student_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(hashedPassword), studentID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
	}

	return nil
}

func (r *studentRepository) UpdateRefreshToken(ctx context.Context, studentID, refreshToken string, expiryTime time.Time) error {
	query := `
		UPDATE students
		SET refresh_token = $1, refresh_token_expiry_time = $2
		WHERE student_id = $3
	`

	_, err := r.db.ExecContext(ctx, query, refreshToken, expiryTime, studentID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}

	return nil
}

func (r *studentRepository) GetStudentByRefreshToken(ctx context.Context, refreshToken string) (*models.Student, error) {
	var student models.Student

	query := `
		SELECT * FROM students
		WHERE refresh_token = $1
		AND refresh_token_expiry_time > CURRENT_TIMESTAMP
	`

	err := r.db.GetContext(ctx, &student, query, refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("invalid or expired refresh token: %w", models.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to get student by refresh token: %w", err)
	}

	return &student, nil
}

// GetNamesByIDs resolves display names for a batch of students in one query,
// for the feed projection.
func (r *studentRepository) GetNamesByIDs(ctx context.Context, studentIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(studentIDs))
	if len(studentIDs) == 0 {
		return names, nil
	}

	query := `SELECT student_id, full_name FROM students WHERE student_id = ANY($1)`

	rows := []struct {
		StudentID string `db:"student_id"`
		FullName  string `db:"full_name"`
	}{}
	err := r.db.SelectContext(ctx, &rows, query, pq.Array(studentIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student names: %w", err)
	}

	for _, row := range rows {
		names[row.StudentID] = row.FullName
	}

	return names, nil
}

func (r *studentRepository) ListStudentsWithStats(ctx context.Context) ([]models.StudentWithStats, error) {
	query := `
		SELECT s.*,
		       (SELECT COUNT(*) FROM posts p WHERE p.author_id = s.student_id) AS post_count
		FROM students s
		ORDER BY s.created_at DESC
	`

	students := []models.StudentWithStats{}
	err := r.db.SelectContext(ctx, &students, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}

func (r *studentRepository) SetAdmin(ctx context.Context, studentID string, isAdmin bool) error {
	query := `UPDATE students SET is_admin = $1 WHERE student_id = $2`

	result, err := r.db.ExecContext(ctx, query, isAdmin, studentID)
	if err != nil {
		return fmt.Errorf("failed to update admin flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
	}

	return nil
}

func (r *studentRepository) DeleteStudent(ctx context.Context, studentID string) error {
	query := `DELETE FROM students WHERE student_id = $1`

	result, err := r.db.ExecContext(ctx, query, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("student %s: %w", studentID, models.ErrNotFound)
	}

	return nil
}
