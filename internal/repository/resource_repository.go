package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
)

type ResourceRepositoryImpl struct {
	DB *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) *ResourceRepositoryImpl {
	return &ResourceRepositoryImpl{DB: db}
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, resource *models.WellnessResource) error {
	query := `
        INSERT INTO wellness_resources (resource_id, name, type, description, url, phone, created_at)
        VALUES (:resource_id, :name, :type, :description, :url, :phone, :created_at)
    `

	if resource.ResourceID == "" {
		resource.ResourceID = uuid.New().String()
	}
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now()
	}

	_, err := r.DB.NamedExecContext(ctx, query, resource)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

func (r *ResourceRepositoryImpl) List(ctx context.Context, search, resourceType string) ([]models.WellnessResource, error) {
	query := `
        SELECT * FROM wellness_resources
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
          AND ($2 = '' OR type = $2)
        ORDER BY created_at DESC
    `

	resources := []models.WellnessResource{}
	err := r.DB.SelectContext(ctx, &resources, query, search, resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	return resources, nil
}

func (r *ResourceRepositoryImpl) Update(ctx context.Context, resource *models.WellnessResource) error {
	query := `
		UPDATE wellness_resources SET
			name = :name,
			type = :type,
			description = :description,
			url = :url,
			phone = :phone
		WHERE resource_id = :resource_id
	`

	result, err := r.DB.NamedExecContext(ctx, query, resource)
	if err != nil {
		return fmt.Errorf("failed to update resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource %s: %w", resource.ResourceID, models.ErrNotFound)
	}

	return nil
}

func (r *ResourceRepositoryImpl) Delete(ctx context.Context, resourceID string) error {
	query := `DELETE FROM wellness_resources WHERE resource_id = $1`

	result, err := r.DB.ExecContext(ctx, query, resourceID)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("resource %s: %w", resourceID, models.ErrNotFound)
	}

	return nil
}
