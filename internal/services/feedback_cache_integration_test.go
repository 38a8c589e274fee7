//go:build integration
// +build integration

package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/interview-generator/internal/models"
)

func TestRedisFeedbackCache_RealServer(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping integration test")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(ctx).Err())

	cache := NewRedisFeedbackCache(client, time.Minute)
	sessionID := uuid.New()
	defer client.Del(ctx, feedbackKey(sessionID))

	miss, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, miss)

	want := &models.FeedbackResponse{
		SessionID:            sessionID,
		Title:                "Mock Interview",
		OverallScore:         7.5,
		AverageQuestionScore: 8,
		StrengthsByCategory:  models.NewCategoryBuckets(),
	}
	require.NoError(t, cache.Set(ctx, sessionID, want))

	got, err := cache.Get(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.AverageQuestionScore, got.AverageQuestionScore)
	assert.Len(t, got.StrengthsByCategory, len(models.AllCategories))

	ttl, err := client.TTL(ctx, feedbackKey(sessionID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
