package llm

import (
	"errors"
	"testing"

	"github.com/repodocs/repodoc/common"
)

func TestNewLLMMissingAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewLLM(common.ProviderClaude, "")
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig for missing API key, got %v", err)
	}
}

func TestNewLLMUnsupportedProvider(t *testing.T) {
	_, err := NewLLM("mistral", "")
	if !errors.Is(err, ErrConfig) {
		t.Errorf("Expected ErrConfig for unsupported provider, got %v", err)
	}
}

func TestNewLLMProviderDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	client, err := NewLLM(common.ProviderClaude, "")
	if err != nil {
		t.Fatalf("NewLLM returned error: %v", err)
	}
	if client.Model() != DefaultClaudeModel {
		t.Errorf("Expected default model %s, got %s", DefaultClaudeModel, client.Model())
	}
	if client.MaxChunkChars() != ClaudeChunkChars {
		t.Errorf("Expected chunk budget %d, got %d", ClaudeChunkChars, client.MaxChunkChars())
	}
}

func TestNewLLMAppliesOptions(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	client, err := NewLLM(common.ProviderOpenAI, "gpt-4",
		WithMaxChunkChars(1234),
	)
	if err != nil {
		t.Fatalf("NewLLM returned error: %v", err)
	}
	if client.Model() != "gpt-4" {
		t.Errorf("Expected model gpt-4, got %s", client.Model())
	}
	if client.MaxChunkChars() != 1234 {
		t.Errorf("Expected chunk budget 1234, got %d", client.MaxChunkChars())
	}
}

func TestMockReplaysResponses(t *testing.T) {
	mock := NewMock(100, "first", "second")

	if resp := mock.Prompt(Request{UserPrompt: "a"}); resp.Content != "first" {
		t.Errorf("Expected first response, got %q", resp.Content)
	}
	if resp := mock.Prompt(Request{UserPrompt: "b"}); resp.Content != "second" {
		t.Errorf("Expected second response, got %q", resp.Content)
	}
	if len(mock.Requests) != 2 {
		t.Errorf("Expected 2 recorded requests, got %d", len(mock.Requests))
	}
}

func TestMockFailOn(t *testing.T) {
	mock := NewMock(100, "ok")
	mock.FailOn = 1

	resp := mock.Prompt(Request{})
	if resp.Error == nil {
		t.Fatal("Expected scripted failure")
	}
	if !errors.Is(resp.Error, ErrBackend) {
		t.Errorf("Expected failure to wrap ErrBackend, got %v", resp.Error)
	}
}
