package models

import (
	"time"

	"github.com/google/uuid"
)

type JobProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title            string    `gorm:"type:text;not null" json:"title"`
	Company          *string   `gorm:"type:text" json:"company,omitempty"`
	Description      string    `gorm:"type:text" json:"description"`
	Skills           []string  `gorm:"type:jsonb;serializer:json" json:"skills"`
	Responsibilities []string  `gorm:"type:jsonb;serializer:json" json:"responsibilities"`
	Requirements     []string  `gorm:"type:jsonb;serializer:json" json:"requirements"`
	SourceFile       string    `gorm:"type:text" json:"source_file,omitempty"`
	CreatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobProfile) TableName() string {
	return "job_profiles"
}

// CompanyName returns the company or an empty string.
func (j *JobProfile) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return *j.Company
}
