package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type FeedbackService interface {
	GetInterviewFeedback(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.FeedbackResponse, error)
}

type feedbackService struct {
	sessionRepo  repositories.SessionRepository
	feedbackRepo repositories.FeedbackRepository
	cache        FeedbackCache
	log          *zap.Logger
}

// NewFeedbackService creates the aggregator. cache may be nil.
func NewFeedbackService(
	sessionRepo repositories.SessionRepository,
	feedbackRepo repositories.FeedbackRepository,
	cache FeedbackCache,
	log *zap.Logger,
) FeedbackService {
	return &feedbackService{
		sessionRepo:  sessionRepo,
		feedbackRepo: feedbackRepo,
		cache:        cache,
		log:          log,
	}
}

// GetInterviewFeedback implements FeedbackService.
func (s *feedbackService) GetInterviewFeedback(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.FeedbackResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(KindNotFound, "interview not found", err)
		}
		return nil, newError(KindInternal, "failed to load interview", err)
	}
	if session.OwnerID != ownerID {
		return nil, newError(KindNotFound, "interview not found", nil)
	}
	if session.Status != models.SessionStatusCompleted {
		return nil, newError(KindBadState, "interview is not completed", nil)
	}
	if session.OverallScore == nil {
		return nil, newError(KindNotFound, "feedback not found", nil)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, sessionID)
		if err != nil {
			s.log.Warn("⚠️ Feedback cache read failed", zap.String("session_id", sessionID.String()), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	metrics, err := s.feedbackRepo.FindMetrics(ctx, sessionID)
	if err != nil {
		return nil, newError(KindInternal, "failed to load metric feedback", err)
	}
	questions, err := s.feedbackRepo.FindQuestionFeedback(ctx, sessionID)
	if err != nil {
		return nil, newError(KindInternal, "failed to load question feedback", err)
	}

	resp := AggregateFeedback(session, metrics, questions)

	if s.cache != nil {
		if err := s.cache.Set(ctx, sessionID, resp); err != nil {
			s.log.Warn("⚠️ Feedback cache write failed", zap.String("session_id", sessionID.String()), zap.Error(err))
		}
	}

	return resp, nil
}

// AggregateFeedback computes averages and groups strengths and improvements
// by question category. Averages are 0 when there are no question rows.
func AggregateFeedback(session *models.InterviewSession, metrics []models.MetricFeedback, questions []models.QuestionFeedbackView) *models.FeedbackResponse {
	strengths := models.NewCategoryBuckets()
	improvements := models.NewCategoryBuckets()

	var scoreSum, relevanceSum, completenessSum float64
	for _, q := range questions {
		scoreSum += q.Score
		relevanceSum += q.RelevanceScore
		completenessSum += q.CompletenessScore

		if _, ok := strengths[q.Category]; !ok {
			continue
		}
		strengths[q.Category] = append(strengths[q.Category], q.Strengths...)
		improvements[q.Category] = append(improvements[q.Category], q.Improvements...)
	}

	if metrics == nil {
		metrics = []models.MetricFeedback{}
	}
	if questions == nil {
		questions = []models.QuestionFeedbackView{}
	}

	var overall float64
	if session.OverallScore != nil {
		overall = *session.OverallScore
	}

	return &models.FeedbackResponse{
		SessionID:                session.ID,
		Title:                    session.Title,
		OverallScore:             overall,
		AverageQuestionScore:     mean(scoreSum, len(questions)),
		AverageRelevanceScore:    mean(relevanceSum, len(questions)),
		AverageCompletenessScore: mean(completenessSum, len(questions)),
		StrengthsByCategory:      strengths,
		ImprovementsByCategory:   improvements,
		Metrics:                  metrics,
		Questions:                questions,
	}
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
