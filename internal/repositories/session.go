package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-generator/internal/models"
)

// TitleFunc picks a free title given the desired one and the owner's
// existing titles that start with it.
type TitleFunc func(desired string, existing []string) string

type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error)
	FindUnindexed(ctx context.Context, limit int) ([]models.InterviewSession, error)
	MarkIndexed(ctx context.Context, id uuid.UUID) error
	// SaveGeneration writes the session, its questions and the credit charge
	// in one transaction. ErrInsufficientCredits rolls everything back.
	// When resolveTitle is set, session.Title is treated as the desired title
	// and replaced with a free one while the owner's titles are locked.
	SaveGeneration(ctx context.Context, session *models.InterviewSession, questions []models.Question, charge int, resolveTitle TitleFunc) error
}

// maxTitleAttempts bounds retries after a unique-title violation.
const maxTitleAttempts = 3

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.InterviewSession, error) {
	var session models.InterviewSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("interview session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find interview session: %w", err)
	}
	return &session, nil
}

func titlesWithPrefix(db *gorm.DB, ownerID uuid.UUID, prefix string) ([]string, error) {
	var titles []string
	err := db.
		Model(&models.InterviewSession{}).
		Where("owner_id = ? AND title LIKE ? ESCAPE '\\'", ownerID, escapeLike(prefix)+"%").
		Pluck("title", &titles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list session titles: %w", err)
	}
	return titles, nil
}

// FindUnindexed implements SessionRepository.
func (r *sessionRepository) FindUnindexed(ctx context.Context, limit int) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.db.WithContext(ctx).
		Where("indexed_at IS NULL AND status <> ?", models.SessionStatusCancelled).
		Order("created_at ASC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unindexed sessions: %w", err)
	}
	return sessions, nil
}

// MarkIndexed implements SessionRepository.
func (r *sessionRepository) MarkIndexed(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.InterviewSession{}).
		Where("id = ?", id).
		Update("indexed_at", time.Now())
	if result.Error != nil {
		return fmt.Errorf("failed to mark session indexed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("interview session %s: %w", id, ErrNotFound)
	}
	return nil
}

// SaveGeneration implements SessionRepository.
func (r *sessionRepository) SaveGeneration(ctx context.Context, session *models.InterviewSession, questions []models.Question, charge int, resolveTitle TitleFunc) error {
	desired := session.Title

	var err error
	for attempt := 0; attempt < maxTitleAttempts; attempt++ {
		session.Title = desired
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return saveGeneration(tx, session, questions, charge, resolveTitle)
		})
		if resolveTitle == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

func saveGeneration(tx *gorm.DB, session *models.InterviewSession, questions []models.Question, charge int, resolveTitle TitleFunc) error {
	if resolveTitle != nil {
		// Held until commit so concurrent generations for one owner see each other's titles.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", session.OwnerID.String()).Error; err != nil {
			return fmt.Errorf("failed to lock session titles: %w", err)
		}
		existing, err := titlesWithPrefix(tx, session.OwnerID, session.Title)
		if err != nil {
			return err
		}
		session.Title = resolveTitle(session.Title, existing)
	}

	if err := tx.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create interview session: %w", err)
	}

	for i := range questions {
		questions[i].SessionID = session.ID
	}
	if len(questions) > 0 {
		if err := tx.CreateInBatches(questions, 100).Error; err != nil {
			return fmt.Errorf("failed to create questions: %w", err)
		}
	}

	return deductCredits(tx, session.OwnerID, charge)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
