package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID       uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Question        string    `gorm:"type:text;not null" json:"question"`
	Explanation     string    `gorm:"type:text" json:"explanation"`
	AnswerFramework string    `gorm:"type:text" json:"answer_framework"`
	Category        Category  `gorm:"type:text;not null" json:"category"`
	Difficulty      int       `gorm:"not null;default:3" json:"difficulty"`
	Order           int       `gorm:"column:sequence_order;not null" json:"order"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Session InterviewSession `gorm:"foreignKey:SessionID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}
