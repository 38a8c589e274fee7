package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIServiceGenerateText(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "[{\"question\":\"Q1\"}]"}, "finish_reason": "stop"}]
		}`))
	}))
	defer srv.Close()

	svc, err := NewOpenAIService("test-key", srv.URL, "")
	require.NoError(t, err)

	text, err := svc.GenerateText(context.Background(), "hello", GenerationOptions{Temperature: 0.5, MaxOutputTokens: 256})
	require.NoError(t, err)

	assert.Equal(t, `[{"question":"Q1"}]`, text)
	assert.Equal(t, defaultOpenAIModel, got["model"])
	assert.EqualValues(t, 256, got["max_tokens"])
	assert.InDelta(t, 0.5, got["temperature"], 1e-6)
}

func TestOpenAIServiceEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	}))
	defer srv.Close()

	svc, err := NewOpenAIService("test-key", srv.URL, "gpt-test")
	require.NoError(t, err)

	_, err = svc.GenerateText(context.Background(), "hello", GenerationOptions{})
	assert.Error(t, err)
}

func TestOpenAIServiceRequiresKey(t *testing.T) {
	_, err := NewOpenAIService("", "", "")
	assert.Error(t, err)
}

func TestAnthropicServiceGenerateText(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-haiku-4-5",
			"content": [{"type": "text", "text": "Question 1: "}, {"type": "text", "text": "Why Go?"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 3, "output_tokens": 5}
		}`))
	}))
	defer srv.Close()

	svc, err := NewAnthropicService("test-key", "", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NoError(t, err)

	text, err := svc.GenerateText(context.Background(), "hello", GenerationOptions{Temperature: 0.2, MaxOutputTokens: 512})
	require.NoError(t, err)

	assert.Equal(t, "Question 1: Why Go?", text)
	assert.Equal(t, defaultAnthropicModel, got["model"])
	assert.EqualValues(t, 512, got["max_tokens"])
}

func TestAnthropicServiceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "api_error", "message": "boom"}}`))
	}))
	defer srv.Close()

	svc, err := NewAnthropicService("test-key", "", option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NoError(t, err)

	_, err = svc.GenerateText(context.Background(), "hello", GenerationOptions{MaxOutputTokens: 16})
	assert.Error(t, err)
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 10))
	assert.Equal(t, "abc", truncateUTF8("abcdef", 3))

	// "é" is two bytes; cutting at 2 would split it.
	got := truncateUTF8("aé", 2)
	assert.Equal(t, "a", got)
	assert.True(t, utf8.ValidString(got))

	got = truncateUTF8("日本語", 7)
	assert.Equal(t, "日本", got)
	assert.True(t, utf8.ValidString(got))
}
