package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"alfredoptarigan/interview-generator/internal/models"
)

// FeedbackCache stores aggregated feedback for completed sessions.
// Get returns (nil, nil) on a miss.
type FeedbackCache interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*models.FeedbackResponse, error)
	Set(ctx context.Context, sessionID uuid.UUID, resp *models.FeedbackResponse) error
}

type redisFeedbackCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedbackCache(client *redis.Client, ttl time.Duration) FeedbackCache {
	return &redisFeedbackCache{client: client, ttl: ttl}
}

func feedbackKey(sessionID uuid.UUID) string {
	return "interview:feedback:" + sessionID.String()
}

// Get implements FeedbackCache.
func (c *redisFeedbackCache) Get(ctx context.Context, sessionID uuid.UUID) (*models.FeedbackResponse, error) {
	raw, err := c.client.Get(ctx, feedbackKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached feedback: %w", err)
	}

	var resp models.FeedbackResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode cached feedback: %w", err)
	}
	return &resp, nil
}

// Set implements FeedbackCache.
func (c *redisFeedbackCache) Set(ctx context.Context, sessionID uuid.UUID, resp *models.FeedbackResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode feedback: %w", err)
	}
	if err := c.client.Set(ctx, feedbackKey(sessionID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache feedback: %w", err)
	}
	return nil
}
