package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-generator/internal/models"
)

type FeedbackRepository interface {
	FindMetrics(ctx context.Context, sessionID uuid.UUID) ([]models.MetricFeedback, error)
	// FindQuestionFeedback returns per-question feedback joined with the
	// question's text, category and order.
	FindQuestionFeedback(ctx context.Context, sessionID uuid.UUID) ([]models.QuestionFeedbackView, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// FindMetrics implements FeedbackRepository.
func (r *feedbackRepository) FindMetrics(ctx context.Context, sessionID uuid.UUID) ([]models.MetricFeedback, error) {
	var metrics []models.MetricFeedback
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&metrics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find metric feedback: %w", err)
	}
	return metrics, nil
}

// FindQuestionFeedback implements FeedbackRepository.
func (r *feedbackRepository) FindQuestionFeedback(ctx context.Context, sessionID uuid.UUID) ([]models.QuestionFeedbackView, error) {
	var rows []models.QuestionFeedback
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("session_id = ?", sessionID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find question feedback: %w", err)
	}

	views := make([]models.QuestionFeedbackView, 0, len(rows))
	for _, row := range rows {
		views = append(views, models.QuestionFeedbackView{
			QuestionFeedback: row,
			QuestionText:     row.Question.Question,
			Category:         row.Question.Category,
			Order:            row.Question.Order,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Order < views[j].Order
	})
	return views, nil
}
