package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/repositories"
)

// SessionIndexer stores a session's questions in the history index.
type SessionIndexer interface {
	IndexSession(ctx context.Context, sessionID uuid.UUID) error
}

// QuestionHistory finds questions previously generated for the same owner and job.
type QuestionHistory interface {
	PreviousQuestions(ctx context.Context, ownerID, jobID uuid.UUID, query string, limit int) ([]string, error)
}

type QuestionHistoryService struct {
	sessionRepo  repositories.SessionRepository
	questionRepo repositories.QuestionRepository
	embedder     Embedder
	index        QuestionIndex
	log          *zap.Logger
}

func NewQuestionHistoryService(
	sessionRepo repositories.SessionRepository,
	questionRepo repositories.QuestionRepository,
	embedder Embedder,
	index QuestionIndex,
	log *zap.Logger,
) *QuestionHistoryService {
	return &QuestionHistoryService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		embedder:     embedder,
		index:        index,
		log:          log,
	}
}

// IndexSession implements SessionIndexer.
func (s *QuestionHistoryService) IndexSession(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	questions, err := s.questionRepo.FindBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}

	for _, q := range questions {
		embedding, err := s.embedder.GenerateEmbedding(ctx, q.Question)
		if err != nil {
			return fmt.Errorf("failed to embed question %s: %w", q.ID, err)
		}

		err = s.index.UpsertQuestion(ctx, IndexedQuestion{
			QuestionID: q.ID,
			SessionID:  session.ID,
			OwnerID:    session.OwnerID,
			JobID:      session.JobID,
			Category:   string(q.Category),
			Text:       q.Question,
		}, embedding)
		if err != nil {
			return fmt.Errorf("failed to index question %s: %w", q.ID, err)
		}
	}

	if err := s.sessionRepo.MarkIndexed(ctx, sessionID); err != nil {
		return err
	}

	s.log.Info("📚 Session indexed", zap.String("session_id", sessionID.String()), zap.Int("questions", len(questions)))
	return nil
}

// PreviousQuestions implements QuestionHistory.
func (s *QuestionHistoryService) PreviousQuestions(ctx context.Context, ownerID, jobID uuid.UUID, query string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed history query: %w", err)
	}

	results, err := s.index.SearchSimilar(ctx, embedding, ownerID, jobID, limit)
	if err != nil {
		return nil, err
	}

	previous := make([]string, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if r.Text == "" || seen[r.Text] {
			continue
		}
		seen[r.Text] = true
		previous = append(previous, r.Text)
	}
	return previous, nil
}
