package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type StudentRepository interface {
	CreateStudent(ctx context.Context, student *models.Student, password string) error
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.Student, error)
	UpdateProfile(ctx context.Context, studentID, fullName string) error
	UpdateAvatarURL(ctx context.Context, studentID, avatarURL string) error
	UpdatePassword(ctx context.Context, studentID, newPassword string) error
	UpdateRefreshToken(ctx context.Context, studentID, refreshToken string, expiryTime time.Time) error
	GetStudentByRefreshToken(ctx context.Context, refreshToken string) (*models.Student, error)
	GetNamesByIDs(ctx context.Context, studentIDs []string) (map[string]string, error)
	ListStudentsWithStats(ctx context.Context) ([]models.StudentWithStats, error)
	SetAdmin(ctx context.Context, studentID string, isAdmin bool) error
	DeleteStudent(ctx context.Context, studentID string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, status, search string) ([]models.Post, error)
	UpdateStatus(ctx context.Context, postID, status string) (*models.Post, error)
	Delete(ctx context.Context, postID string) (bool, error)
	CountByStatus(ctx context.Context) (*models.ModerationCounts, error)
	CountsForPosts(ctx context.Context, postIDs []string) (map[string]models.PostEngagement, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByPostID(ctx context.Context, postID string) ([]models.Comment, error)
}

type LikeRepository interface {
	Toggle(ctx context.Context, postID, studentID string) (bool, error)
	CountForPost(ctx context.Context, postID string) (int, error)
	LikedPostIDs(ctx context.Context, studentID string, postIDs []string) (map[string]bool, error)
}

type JournalRepository interface {
	Create(ctx context.Context, journal *models.Journal) error
	GetByID(ctx context.Context, journalID string) (*models.Journal, error)
	GetByStudentID(ctx context.Context, studentID string) ([]models.Journal, error)
	Update(ctx context.Context, journal *models.Journal) error
	Delete(ctx context.Context, journalID, studentID string) error
}

type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) error
	GetByStudentID(ctx context.Context, studentID string, limit int) ([]models.MoodEntry, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.WellnessResource) error
	List(ctx context.Context, search, resourceType string) ([]models.WellnessResource, error)
	Update(ctx context.Context, resource *models.WellnessResource) error
	Delete(ctx context.Context, resourceID string) error
}

type Repository struct {
	Student  StudentRepository
	Post     PostRepository
	Comment  CommentRepository
	Like     LikeRepository
	Journal  JournalRepository
	Mood     MoodRepository
	Resource ResourceRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Student:  NewStudentRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Like:     NewLikeRepository(db),
		Journal:  NewJournalRepository(db),
		Mood:     NewMoodRepository(db),
		Resource: NewResourceRepository(db),
	}
}
