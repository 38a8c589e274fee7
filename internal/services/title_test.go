package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-generator/internal/models"
)

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"free title", nil, "Backend Interview"},
		{"first copy", []string{"Backend Interview"}, "Backend Interview - (1)"},
		{"second copy", []string{"Backend Interview", "Backend Interview - (1)"}, "Backend Interview - (2)"},
		{"gaps use the highest", []string{"Backend Interview", "Backend Interview - (4)"}, "Backend Interview - (5)"},
		{"similar prefixes ignored", []string{"Backend Interview", "Backend Interview Prep - (7)"}, "Backend Interview - (1)"},
		{"only numbered copies exist", []string{"Backend Interview - (1)"}, "Backend Interview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveTitle("Backend Interview", tt.existing))
		})
	}
}

func TestResolveTitleEscapesPattern(t *testing.T) {
	got := ResolveTitle("C++ (Senior)", []string{"C++ (Senior)", "C++ (Senior) - (1)"})
	assert.Equal(t, "C++ (Senior) - (2)", got)
}

func TestSaveGenerationResolvesTitleSequence(t *testing.T) {
	credits := newFakeCreditRepo()
	repo := newFakeSessionRepo(credits)
	ownerID := uuid.New()
	credits.set(ownerID, 3)

	var got []string
	for i := 0; i < 3; i++ {
		session := &models.InterviewSession{ID: uuid.New(), OwnerID: ownerID, Title: "T"}
		require.NoError(t, repo.SaveGeneration(context.Background(), session, nil, 1, ResolveTitle))
		got = append(got, session.Title)
	}

	assert.Equal(t, []string{"T", "T - (1)", "T - (2)"}, got)
}
