package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type InterviewService interface {
	GetInterview(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDetailResponse, error)
}

type interviewService struct {
	sessionRepo  repositories.SessionRepository
	questionRepo repositories.QuestionRepository
}

func NewInterviewService(sessionRepo repositories.SessionRepository, questionRepo repositories.QuestionRepository) InterviewService {
	return &interviewService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
	}
}

// GetInterview implements InterviewService. Sessions owned by someone else
// are reported as missing.
func (s *interviewService) GetInterview(ctx context.Context, ownerID, sessionID uuid.UUID) (*models.SessionDetailResponse, error) {
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

	questions, err := s.questionRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, newError(KindInternal, "failed to load questions", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}

	return &models.SessionDetailResponse{Session: session, Questions: questions}, nil
}
