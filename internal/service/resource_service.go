package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

type ResourceService interface {
	ListResources(ctx context.Context, search, resourceType string) ([]models.WellnessResource, error)
	CreateResource(ctx context.Context, actor Actor, resource *models.WellnessResource) (*models.WellnessResource, error)
	UpdateResource(ctx context.Context, actor Actor, resource *models.WellnessResource) error
	DeleteResource(ctx context.Context, actor Actor, resourceID string) error
}

type resourceService struct {
	resourceRepo repository.ResourceRepository
}

func NewResourceService(resourceRepo repository.ResourceRepository) ResourceService {
	return &resourceService{resourceRepo: resourceRepo}
}

// ListResources is public: hotlines and support links need no login.
func (s *resourceService) ListResources(ctx context.Context, search, resourceType string) ([]models.WellnessResource, error) {
	return s.resourceRepo.List(ctx, search, resourceType)
}

func (s *resourceService) CreateResource(ctx context.Context, actor Actor, resource *models.WellnessResource) (*models.WellnessResource, error) {
	if !actor.IsAdmin {
		return nil, fmt.Errorf("managing resources requires admin role: %w", models.ErrUnauthorized)
	}

	if strings.TrimSpace(resource.Name) == "" || strings.TrimSpace(resource.Type) == "" {
		return nil, fmt.Errorf("resource name and type are required: %w", models.ErrValidation)
	}

	err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, actor Actor, resource *models.WellnessResource) error {
	if !actor.IsAdmin {
		return fmt.Errorf("managing resources requires admin role: %w", models.ErrUnauthorized)
	}

	return s.resourceRepo.Update(ctx, resource)
}

func (s *resourceService) DeleteResource(ctx context.Context, actor Actor, resourceID string) error {
	if !actor.IsAdmin {
		return fmt.Errorf("managing resources requires admin role: %w", models.ErrUnauthorized)
	}

	return s.resourceRepo.Delete(ctx, resourceID)
}
