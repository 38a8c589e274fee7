package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type GenerateInterviewRequest struct {
	JobID         string     `json:"job_id" validate:"required,uuid"`
	Title         string     `json:"title" validate:"required,min=1,max=200"`
	QuestionCount int        `json:"question_count" validate:"min=3,max=7"`
	Categories    []Category `json:"selected_types" validate:"required,min=1,max=5,unique,dive,oneof=technical behavioral situational role_specific company_specific"`
}

// Validate trims the title and checks the request shape before any work is done.
func (r *GenerateInterviewRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	return validate.Struct(r)
}

// ParsedJobID assumes Validate has already passed.
func (r *GenerateInterviewRequest) ParsedJobID() uuid.UUID {
	id, _ := uuid.Parse(r.JobID)
	return id
}

type CreateJobRequest struct {
	Title            string   `json:"title" validate:"required,max=200"`
	Company          string   `json:"company,omitempty" validate:"max=200"`
	Description      string   `json:"description" validate:"required"`
	Skills           []string `json:"skills" validate:"dive,required"`
	Responsibilities []string `json:"responsibilities" validate:"dive,required"`
	Requirements     []string `json:"requirements" validate:"dive,required"`
}

func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

type CategoryFailure struct {
	Category Category `json:"category"`
	Reason   string   `json:"reason"`
}

type GenerateInterviewResponse struct {
	Session   *InterviewSession `json:"session"`
	Questions []Question        `json:"questions"`
	Succeeded []Category        `json:"succeeded_categories"`
	Failed    []CategoryFailure `json:"failed_categories"`
}

type SessionDetailResponse struct {
	Session   *InterviewSession `json:"session"`
	Questions []Question        `json:"questions"`
}

type FeedbackResponse struct {
	SessionID                uuid.UUID              `json:"session_id"`
	Title                    string                 `json:"title"`
	OverallScore             float64                `json:"overall_score"`
	AverageQuestionScore     float64                `json:"average_question_score"`
	AverageRelevanceScore    float64                `json:"average_relevance_score"`
	AverageCompletenessScore float64                `json:"average_completeness_score"`
	StrengthsByCategory      map[Category][]string  `json:"strengths_by_category"`
	ImprovementsByCategory   map[Category][]string  `json:"improvements_by_category"`
	Metrics                  []MetricFeedback       `json:"metrics"`
	Questions                []QuestionFeedbackView `json:"questions"`
}

type CreditResponse struct {
	Remaining int `json:"remaining"`
	TotalUsed int `json:"total_used"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
