package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GENERATION_MAX_PARALLEL", "")
	t.Setenv("FEEDBACK_CACHE_TTL", "")
	t.Setenv("LLM_TEMPERATURE", "")

	cfg := Load()

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, 1, cfg.Generation.MaxParallel)
	assert.Equal(t, time.Hour, cfg.Redis.FeedbackTTL)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("GENERATION_MAX_PARALLEL", "4")
	t.Setenv("WORKER_POLL_INTERVAL", "5s")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 4, cfg.Generation.MaxParallel)
	assert.Equal(t, 5*time.Second, cfg.Worker.PollInterval)
	assert.False(t, cfg.IsDevelopment())
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "soon")
	assert.Equal(t, 2*time.Second, getEnvAsDuration("SOME_DURATION", "2s"))
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "n",
	}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
