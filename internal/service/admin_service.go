package service

import (
	"context"
	"fmt"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

// AdminService is the user-management side of the admin console.
type AdminService interface {
	ListStudents(ctx context.Context, actor Actor) ([]models.StudentWithStats, error)
	PromoteStudent(ctx context.Context, actor Actor, studentID string) error
	DeleteStudent(ctx context.Context, actor Actor, studentID string) error
}

type adminService struct {
	studentRepo repository.StudentRepository
}

func NewAdminService(studentRepo repository.StudentRepository) AdminService {
	return &adminService{studentRepo: studentRepo}
}

func (s *adminService) ListStudents(ctx context.Context, actor Actor) ([]models.StudentWithStats, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("user management requires admin role: %w", models.ErrUnauthorized)
	}

	return s.studentRepo.ListStudentsWithStats(ctx)
}

func (s *adminService) PromoteStudent(ctx context.Context, actor Actor, studentID string) error {
	if !actor.IsAdmin {
		return fmt.Errorf("user management requires admin role: %w", models.ErrUnauthorized)
	}

	return s.studentRepo.SetAdmin(ctx, studentID, true)
}

func (s *adminService) DeleteStudent(ctx context.Context, actor Actor, studentID string) error {
	if !actor.IsAdmin {
		return fmt.Errorf("user management requires admin role: %w", models.ErrUnauthorized)
	}

	if actor.StudentID == studentID {
		return fmt.Errorf("admins cannot delete their own account: %w", models.ErrValidation)
	}

	return s.studentRepo.DeleteStudent(ctx, studentID)
}
