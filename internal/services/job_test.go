package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/models"
)

const samplePosting = `Senior Backend Engineer
We build payments infrastructure for small businesses.

Responsibilities:
- Design and operate Go services
- Mentor engineers

**Skills**
Go, PostgreSQL, Kafka
• Docker

Requirements
1. 5+ years of backend experience
2) Strong SQL
`

func TestParseJobSections(t *testing.T) {
	got := ParseJobSections(samplePosting)

	assert.Equal(t, "Senior Backend Engineer\nWe build payments infrastructure for small businesses.", got.Description)
	assert.Equal(t, []string{"Design and operate Go services", "Mentor engineers"}, got.Responsibilities)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kafka", "Docker"}, got.Skills)
	assert.Equal(t, []string{"5+ years of backend experience", "Strong SQL"}, got.Requirements)
}

func TestParseJobSectionsWithoutHeadings(t *testing.T) {
	got := ParseJobSections("  Just a paragraph.  \n\n  Another line. ")

	assert.Equal(t, "Just a paragraph.\nAnother line.", got.Description)
	assert.Empty(t, got.Skills)
	assert.Empty(t, got.Responsibilities)
	assert.Empty(t, got.Requirements)
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) ExtractText(string) (string, error) {
	return s.text, s.err
}

func TestImportJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, stubExtractor{text: samplePosting}, zap.NewNop())
	ownerID := uuid.New()

	job, err := svc.ImportJob(context.Background(), ownerID, " Backend Engineer ", "Acme", "/tmp/x.pdf", "posting.pdf")
	require.NoError(t, err)

	assert.Equal(t, ownerID, job.OwnerID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.CompanyName())
	assert.Equal(t, "posting.pdf", job.SourceFile)
	assert.Len(t, job.Skills, 4)
	assert.Len(t, repo.created, 1)
}

func TestImportJobErrors(t *testing.T) {
	ownerID := uuid.New()

	_, err := NewJobService(newFakeJobRepo(), stubExtractor{text: samplePosting}, zap.NewNop()).
		ImportJob(context.Background(), ownerID, " ", "", "/tmp/x.pdf", "x.pdf")
	assert.True(t, IsKind(err, KindValidation))

	_, err = NewJobService(newFakeJobRepo(), stubExtractor{err: errors.New("corrupt")}, zap.NewNop()).
		ImportJob(context.Background(), ownerID, "Title", "", "/tmp/x.pdf", "x.pdf")
	assert.True(t, IsKind(err, KindValidation))

	failing := newFakeJobRepo()
	failing.err = errors.New("db down")
	_, err = NewJobService(failing, stubExtractor{text: samplePosting}, zap.NewNop()).
		ImportJob(context.Background(), ownerID, "Title", "", "/tmp/x.pdf", "x.pdf")
	assert.True(t, IsKind(err, KindInternal))
}

func TestCreateJob(t *testing.T) {
	repo := newFakeJobRepo()
	svc := NewJobService(repo, stubExtractor{}, zap.NewNop())

	job, err := svc.CreateJob(context.Background(), uuid.New(), &models.CreateJobRequest{
		Title:       "Data Engineer",
		Description: "Pipelines.",
		Skills:      []string{"Spark"},
	})
	require.NoError(t, err)
	assert.Nil(t, job.Company)
	assert.Equal(t, []string{}, job.Requirements)

	_, err = svc.CreateJob(context.Background(), uuid.New(), &models.CreateJobRequest{Title: "No description"})
	assert.True(t, IsKind(err, KindValidation))
}
