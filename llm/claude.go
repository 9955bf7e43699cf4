package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/repodocs/repodoc/logger"
)

// ClaudeModel implements the LLM interface using Anthropic's API
type ClaudeModel struct {
	client        anthropic.Client
	modelName     string
	maxTokens     int
	maxChunkChars int
	apiTimeout    int // in seconds
}

// NewClaude creates a new Anthropic client
func NewClaude(apiKey string, opts ...Option) (*ClaudeModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: Anthropic API key cannot be empty", ErrConfig)
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	model := &ClaudeModel{
		client:        client,
		modelName:     DefaultClaudeModel,
		maxTokens:     4096,
		maxChunkChars: ClaudeChunkChars,
		apiTimeout:    120,
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok {
				model.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok {
				model.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok {
				model.apiTimeout = timeout
			}
		case MaxChunkCharsOption:
			if chars, ok := opt.Value.(int); ok && chars > 0 {
				model.maxChunkChars = chars
			}
		}
	}

	return model, nil
}

// MaxChunkChars returns the character budget for one prompt
func (a *ClaudeModel) MaxChunkChars() int {
	return a.maxChunkChars
}

// Model returns the model identifier in use
func (a *ClaudeModel) Model() string {
	return a.modelName
}

// Prompt sends a request to Anthropic and returns the response
func (a *ClaudeModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Anthropic model: %s", a.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.apiTimeout)*time.Second)
	defer cancel()

	messages := []anthropic.MessageParam{
		{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(req.UserPrompt),
			},
		},
	}

	// Convert model name string to anthropic.Model
	var model anthropic.Model
	switch a.modelName {
	case "claude-3.7-sonnet":
		model = anthropic.ModelClaude3_7SonnetLatest
	case "claude-3.5-sonnet":
		model = anthropic.ModelClaude3_5SonnetLatest
	case "claude-3.5-haiku":
		model = anthropic.ModelClaude3_5HaikuLatest
	default:
		model = anthropic.ModelClaude3_7SonnetLatest // Default fallback
	}

	messageParams := anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: int64(a.maxTokens),
		Messages:  messages,
	}

	if req.SystemPrompt != "" {
		messageParams.System = []anthropic.TextBlockParam{
			{Text: req.SystemPrompt},
		}
	}

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		errMsg := fmt.Errorf("%w: failed to create message: %v", ErrBackend, err)
		logger.Error(errMsg.Error())
		return Response{
			Error: errMsg,
		}
	}

	// Extract text content from the response
	var content string
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content += b.Text
		}
	}

	if content == "" {
		errMsg := fmt.Errorf("%w: Anthropic response contained no text content", ErrBackend)
		logger.Error(errMsg.Error())
		return Response{
			Error: errMsg,
		}
	}

	return Response{
		Content: content,
	}
}
