package service

import (
	"context"
	"fmt"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

type MoodService interface {
	RecordMood(ctx context.Context, studentID string, score int, note string) (*models.MoodEntry, error)
	GetMoodHistory(ctx context.Context, studentID string, limit int) ([]models.MoodEntry, error)
}

type moodService struct {
	moodRepo repository.MoodRepository
}

func NewMoodService(moodRepo repository.MoodRepository) MoodService {
	return &moodService{moodRepo: moodRepo}
}

func (s *moodService) RecordMood(ctx context.Context, studentID string, score int, note string) (*models.MoodEntry, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("mood score must be between 1 and 5: %w", models.ErrValidation)
	}

	entry := &models.MoodEntry{
		StudentID: studentID,
		Score:     score,
		Note:      note,
	}

	err := s.moodRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *moodService) GetMoodHistory(ctx context.Context, studentID string, limit int) ([]models.MoodEntry, error) {
	return s.moodRepo.GetByStudentID(ctx, studentID, limit)
}
