package models

import (
	"time"

	"github.com/google/uuid"
)

// QuestionFeedback is the score a single answered question received.
type QuestionFeedback struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID         uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	QuestionID        uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Score             float64   `gorm:"type:decimal(4,2);not null" json:"score"`
	RelevanceScore    float64   `gorm:"type:decimal(4,2);not null;default:0" json:"relevance_score"`
	CompletenessScore float64   `gorm:"type:decimal(4,2);not null;default:0" json:"completeness_score"`
	Feedback          string    `gorm:"type:text" json:"feedback"`
	Strengths         []string  `gorm:"type:jsonb;serializer:json" json:"strengths"`
	Improvements      []string  `gorm:"type:jsonb;serializer:json" json:"improvements"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Question Question `gorm:"foreignKey:QuestionID" json:"-"`
}

func (QuestionFeedback) TableName() string {
	return "question_feedback"
}

// MetricFeedback scores one evaluation dimension across the whole session.
type MetricFeedback struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Metric       string    `gorm:"type:text;not null" json:"metric"`
	Score        float64   `gorm:"type:decimal(4,2);not null" json:"score"`
	Feedback     string    `gorm:"type:text" json:"feedback"`
	Strengths    []string  `gorm:"type:jsonb;serializer:json" json:"strengths"`
	Improvements []string  `gorm:"type:jsonb;serializer:json" json:"improvements"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (MetricFeedback) TableName() string {
	return "metric_feedback"
}

// QuestionFeedbackView joins a feedback row with the question it scores.
type QuestionFeedbackView struct {
	QuestionFeedback
	QuestionText string   `json:"question"`
	Category     Category `json:"category"`
	Order        int      `json:"order"`
}
