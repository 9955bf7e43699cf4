package llm

import (
	"errors"
	"fmt"
	"os"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
)

// Sentinel errors so callers can tell a bad setup from a failed API call
var (
	// ErrConfig covers missing credentials and unknown providers
	ErrConfig = errors.New("llm configuration error")
	// ErrBackend covers failures returned by a provider's API
	ErrBackend = errors.New("llm backend failure")
)

// Per-provider chunk budgets, in characters. These mirror each provider's
// context window with a rough 4-chars-per-token conversion; character counts
// only approximate tokens, so token-dense input may still overflow.
const (
	ClaudeChunkChars = 400000
	GeminiChunkChars = 800000
	OpenAIChunkChars = 200000
)

// Default models per provider
const (
	DefaultClaudeModel = "claude-3.7-sonnet"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4-turbo-preview"
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption     OptionType = "model"
	MaxTokensOption     OptionType = "max_tokens"
	APITimeoutOption    OptionType = "api_timeout"
	MaxChunkCharsOption OptionType = "max_chunk_chars"
	BaseURLOption       OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithMaxTokens creates an option to set the max response tokens
func WithMaxTokens(maxTokens int) Option {
	return Option{
		Type:  MaxTokensOption,
		Value: maxTokens,
	}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{
		Type:  APITimeoutOption,
		Value: timeout,
	}
}

// WithMaxChunkChars creates an option to override the provider's chunk budget
func WithMaxChunkChars(chars int) Option {
	return Option{
		Type:  MaxChunkCharsOption,
		Value: chars,
	}
}

// WithBaseURL creates an option to override the provider's API endpoint
func WithBaseURL(url string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: url,
	}
}

// Request represents the data sent to the LLM for one chunk
type Request struct {
	SystemPrompt string
	UserPrompt   string
}

// Response represents the response from the LLM
type Response struct {
	Content string
	Error   error
}

// LLM defines the interface for language model prompting.
// MaxChunkChars is the provider's character budget for a single prompt;
// the documenter splits oversized content against it.
type LLM interface {
	// Prompt sends a request to the language model and returns its response
	Prompt(req Request) Response
	// MaxChunkChars returns the character budget for one prompt
	MaxChunkChars() int
	// Model returns the model identifier in use
	Model() string
}

// apiKeyEnv maps a provider to the environment variable holding its key
var apiKeyEnv = map[string]string{
	common.ProviderClaude: "ANTHROPIC_API_KEY",
	common.ProviderGemini: "GOOGLE_API_KEY",
	common.ProviderOpenAI: "OPENAI_API_KEY",
}

func getAPIKey(providerName string) (string, error) {
	envVar, ok := apiKeyEnv[providerName]
	if !ok {
		return "", fmt.Errorf("%w: unsupported provider: %s", ErrConfig, providerName)
	}
	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return "", fmt.Errorf("%w: %s environment variable is not set", ErrConfig, envVar)
	}
	return apiKey, nil
}

// NewLLM creates a client for the named provider. The API key comes from the
// provider's environment variable and is checked before anything else runs.
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	apiKey, err := getAPIKey(providerName)
	if err != nil {
		return nil, err
	}

	options := []Option{
		WithMaxTokens(4096),
		WithAPITimeout(120),
	}
	if modelName != "" {
		options = append(options, WithModel(modelName))
	}
	options = append(options, opts...)

	var llmClient LLM
	switch providerName {
	case common.ProviderClaude:
		llmClient, err = NewClaude(apiKey, options...)
	case common.ProviderGemini:
		llmClient, err = NewGemini(apiKey, options...)
	case common.ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, options...)
	default:
		err = fmt.Errorf("%w: unsupported provider: %s", ErrConfig, providerName)
	}

	if err == nil {
		logger.Infof("Using LLM provider %s with model %s", providerName, llmClient.Model())
	}

	return llmClient, err
}
