package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-generator/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.JobProfile) error
	FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.JobProfile, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(ctx context.Context, job *models.JobProfile) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job profile: %w", err)
	}
	return nil
}

// FindByIDForOwner implements JobRepository.
func (r *jobRepository) FindByIDForOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.JobProfile, error) {
	var job models.JobProfile
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find job profile: %w", err)
	}
	return &job, nil
}
