package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

type JournalService interface {
	CreateJournal(ctx context.Context, studentID, title, content string) (*models.Journal, error)
	GetJournals(ctx context.Context, studentID string) ([]models.Journal, error)
	UpdateJournal(ctx context.Context, studentID, journalID, title, content string) (*models.Journal, error)
	DeleteJournal(ctx context.Context, studentID, journalID string) error
}

type journalService struct {
	journalRepo repository.JournalRepository
}

func NewJournalService(journalRepo repository.JournalRepository) JournalService {
	return &journalService{journalRepo: journalRepo}
}

func (s *journalService) CreateJournal(ctx context.Context, studentID, title, content string) (*models.Journal, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("journal content is required: %w", models.ErrValidation)
	}

	if strings.TrimSpace(title) == "" {
		title = "Untitled"
	}

	journal := &models.Journal{
		StudentID: studentID,
		Title:     title,
		Content:   content,
	}

	err := s.journalRepo.Create(ctx, journal)
	if err != nil {
		return nil, err
	}

	return journal, nil
}

func (s *journalService) GetJournals(ctx context.Context, studentID string) ([]models.Journal, error) {
	return s.journalRepo.GetByStudentID(ctx, studentID)
}

func (s *journalService) UpdateJournal(ctx context.Context, studentID, journalID, title, content string) (*models.Journal, error) {
	journal, err := s.journalRepo.GetByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	// owner check before the scoped update, so a foreign id reads as not found
	if journal.StudentID != studentID {
		return nil, fmt.Errorf("journal %s: %w", journalID, models.ErrNotFound)
	}

	if strings.TrimSpace(title) != "" {
		journal.Title = title
	}
	if strings.TrimSpace(content) != "" {
		journal.Content = content
	}

	err = s.journalRepo.Update(ctx, journal)
	if err != nil {
		return nil, err
	}

	return journal, nil
}

func (s *journalService) DeleteJournal(ctx context.Context, studentID, journalID string) error {
	return s.journalRepo.Delete(ctx, journalID, studentID)
}
