package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-generator/internal/models"
)

type QuestionRepository interface {
	FindBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindBySession implements QuestionRepository.
func (r *questionRepository) FindBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("sequence_order ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}
	return questions, nil
}
