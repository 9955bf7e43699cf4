package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface using OpenAI's API
type OpenAIModel struct {
	client        *openai.Client
	modelName     string
	maxTokens     int
	maxChunkChars int
	apiTimeout    int // in seconds
}

// NewOpenAI creates a new OpenAI client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: OpenAI API key cannot be empty", ErrConfig)
	}

	// Create retryable HTTP client with exponential backoff using common configuration
	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	config := openai.DefaultConfig(apiKey)
	config.HTTPClient = retryClient.StandardClient()

	model := &OpenAIModel{
		client:        openai.NewClientWithConfig(config),
		modelName:     DefaultOpenAIModel,
		maxTokens:     4096,
		maxChunkChars: OpenAIChunkChars,
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

	logger.Debugf("OpenAI client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		model.modelName, model.maxTokens, model.apiTimeout)

	return model, nil
}

// MaxChunkChars returns the character budget for one prompt
func (o *OpenAIModel) MaxChunkChars() int {
	return o.maxChunkChars
}

// Model returns the model identifier in use
func (o *OpenAIModel) Model() string {
	return o.modelName
}

// Prompt sends a request to OpenAI and returns the response
func (o *OpenAIModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to OpenAI model: %s", o.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(o.apiTimeout)*time.Second)
	defer cancel()

	messages := []openai.ChatCompletionMessage{}

	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserPrompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       o.modelName,
		Messages:    messages,
		MaxTokens:   o.maxTokens,
		Temperature: 0.3, // Lower temperature for more consistent documentation
	}

	logger.Infof("Sending request to OpenAI with model %s, max tokens %d", o.modelName, o.maxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		errMsg := fmt.Errorf("%w: failed to create chat completion: %v", ErrBackend, err)
		logger.Error(errMsg.Error())
		return Response{
			Error: errMsg,
		}
	}

	if len(resp.Choices) == 0 {
		errMsg := fmt.Errorf("%w: OpenAI response contained no choices", ErrBackend)
		logger.Error(errMsg.Error())
		return Response{
			Error: errMsg,
		}
	}

	return Response{
		Content: resp.Choices[0].Message.Content,
	}
}
