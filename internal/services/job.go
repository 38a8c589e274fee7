package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/models"
	"alfredoptarigan/interview-generator/internal/repositories"
)

type JobService interface {
	CreateJob(ctx context.Context, ownerID uuid.UUID, req *models.CreateJobRequest) (*models.JobProfile, error)
	// ImportJob builds a job profile from a PDF posting on disk.
	ImportJob(ctx context.Context, ownerID uuid.UUID, title, company, filePath, sourceFile string) (*models.JobProfile, error)
}

type jobService struct {
	jobRepo   repositories.JobRepository
	extractor DocumentExtractor
	log       *zap.Logger
}

func NewJobService(jobRepo repositories.JobRepository, extractor DocumentExtractor, log *zap.Logger) JobService {
	return &jobService{
		jobRepo:   jobRepo,
		extractor: extractor,
		log:       log,
	}
}

// CreateJob implements JobService.
func (s *jobService) CreateJob(ctx context.Context, ownerID uuid.UUID, req *models.CreateJobRequest) (*models.JobProfile, error) {
	if err := req.Validate(); err != nil {
		return nil, newError(KindValidation, "invalid job profile", err)
	}

	job := &models.JobProfile{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            strings.TrimSpace(req.Title),
		Company:          optionalCompany(req.Company),
		Description:      req.Description,
		Skills:           nonNil(req.Skills),
		Responsibilities: nonNil(req.Responsibilities),
		Requirements:     nonNil(req.Requirements),
	}
	return s.save(ctx, job)
}

// ImportJob implements JobService.
func (s *jobService) ImportJob(ctx context.Context, ownerID uuid.UUID, title, company, filePath, sourceFile string) (*models.JobProfile, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newError(KindValidation, "job title is required", nil)
	}

	text, err := s.extractor.ExtractText(filePath)
	if err != nil {
		return nil, newError(KindValidation, "failed to read job posting", err)
	}
	sections := ParseJobSections(text)

	job := &models.JobProfile{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Title:            strings.TrimSpace(title),
		Company:          optionalCompany(company),
		Description:      sections.Description,
		Skills:           nonNil(sections.Skills),
		Responsibilities: nonNil(sections.Responsibilities),
		Requirements:     nonNil(sections.Requirements),
		SourceFile:       sourceFile,
	}

	s.log.Info("📄 Parsed job posting",
		zap.String("source", sourceFile),
		zap.Int("skills", len(job.Skills)),
		zap.Int("responsibilities", len(job.Responsibilities)),
		zap.Int("requirements", len(job.Requirements)),
	)

	return s.save(ctx, job)
}

func (s *jobService) save(ctx context.Context, job *models.JobProfile) (*models.JobProfile, error) {
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, newError(KindInternal, "failed to save job profile", err)
	}
	return job, nil
}

func optionalCompany(company string) *string {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil
	}
	return &company
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
