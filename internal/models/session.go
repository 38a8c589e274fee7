package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusCreated    SessionStatus = "created"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

type InterviewSession struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_sessions_owner_title" json:"owner_id"`
	JobID         uuid.UUID     `gorm:"type:uuid;not null;index" json:"job_id"`
	Title         string        `gorm:"type:text;not null;uniqueIndex:idx_sessions_owner_title" json:"title"`
	Status        SessionStatus `gorm:"not null;default:'created'" json:"status"`
	QuestionCount int           `gorm:"not null" json:"question_count"`
	OverallScore  *float64      `gorm:"type:decimal(4,2)" json:"overall_score,omitempty"`
	IndexedAt     *time.Time    `json:"-"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	CreatedAt     time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	Job JobProfile `gorm:"foreignKey:JobID" json:"-"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
