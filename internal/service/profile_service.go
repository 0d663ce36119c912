package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/storage"
)

type ProfileService interface {
	GetProfile(ctx context.Context, studentID string) (*models.Student, error)
	UpdateProfile(ctx context.Context, studentID, fullName string) error
	ChangePassword(ctx context.Context, studentID, currentPassword, newPassword string) error
	UploadAvatar(ctx context.Context, studentID, fileName string, file io.Reader, size int64) (string, error)
}

type profileService struct {
	studentRepo repository.StudentRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewProfileService(studentRepo repository.StudentRepository, storage storage.Storage, cfg *config.Config) ProfileService {
	return &profileService{
		studentRepo: studentRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *profileService) GetProfile(ctx context.Context, studentID string) (*models.Student, error) {
	return s.studentRepo.GetStudentByID(ctx, studentID)
}

func (s *profileService) UpdateProfile(ctx context.Context, studentID, fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full name is required: %w", models.ErrValidation)
	}

	return s.studentRepo.UpdateProfile(ctx, studentID, fullName)
}

func (s *profileService) ChangePassword(ctx context.Context, studentID, currentPassword, newPassword string) error {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return err
	}

	// verify the current password before accepting the new one
	if _, err := s.studentRepo.VerifyPassword(ctx, student.Email, currentPassword); err != nil {
		return fmt.Errorf("current password is incorrect: %w", models.ErrUnauthorized)
	}

	if len(newPassword) < 6 {
		return fmt.Errorf("new password must be at least 6 characters: %w", models.ErrValidation)
	}

	return s.studentRepo.UpdatePassword(ctx, studentID, newPassword)
}

func (s *profileService) UploadAvatar(ctx context.Context, studentID, fileName string, file io.Reader, size int64) (string, error) {
	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, studentID, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	err = s.studentRepo.UpdateAvatarURL(ctx, studentID, avatarURL)
	if err != nil {
		s.storage.DeleteAvatar(ctx, objectName)
		return "", err
	}

	return avatarURL, nil
}
