package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/logger"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiModel implements the LLM interface against the Generative Language
// REST API. There is no official Go SDK dependency here; the API is a single
// JSON POST per prompt.
type GeminiModel struct {
	apiKey        string
	baseURL       string
	modelName     string
	maxTokens     int
	maxChunkChars int
	apiTimeout    int // in seconds
	httpClient    *http.Client
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float32 `json:"temperature"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
	Error      *geminiError      `json:"error,omitempty"`
}

// NewGemini creates a new Gemini client
func NewGemini(apiKey string, opts ...Option) (*GeminiModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: Google API key cannot be empty", ErrConfig)
	}

	retryClient := common.NewRetryableClient(common.DefaultRetryConfig())

	model := &GeminiModel{
		apiKey:        apiKey,
		baseURL:       defaultGeminiBaseURL,
		modelName:     DefaultGeminiModel,
		maxTokens:     4096,
		maxChunkChars: GeminiChunkChars,
		apiTimeout:    120,
		httpClient:    retryClient.StandardClient(),
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
		case BaseURLOption:
			if url, ok := opt.Value.(string); ok && url != "" {
				model.baseURL = url
			}
		}
	}

	return model, nil
}

// MaxChunkChars returns the character budget for one prompt
func (g *GeminiModel) MaxChunkChars() int {
	return g.maxChunkChars
}

// Model returns the model identifier in use
func (g *GeminiModel) Model() string {
	return g.modelName
}

// Prompt sends a request to Gemini and returns the response
func (g *GeminiModel) Prompt(req Request) Response {
	logger.Debugf("Sending prompt to Gemini model: %s", g.modelName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.apiTimeout)*time.Second)
	defer cancel()

	payload := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: req.UserPrompt}},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			MaxOutputTokens: g.maxTokens,
			Temperature:     0.3,
		},
	}
	if req.SystemPrompt != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Response{Error: fmt.Errorf("%w: failed to encode request: %v", ErrBackend, err)}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.modelName, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{Error: fmt.Errorf("%w: failed to build request: %v", ErrBackend, err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		errMsg := fmt.Errorf("%w: request to Gemini failed: %v", ErrBackend, err)
		logger.Error(errMsg.Error())
		return Response{Error: errMsg}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{Error: fmt.Errorf("%w: failed to read response: %v", ErrBackend, err)}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return Response{Error: fmt.Errorf("%w: failed to decode response: %v", ErrBackend, err)}
	}

	if parsed.Error != nil {
		errMsg := fmt.Errorf("%w: Gemini API error %d (%s): %s",
			ErrBackend, parsed.Error.Code, parsed.Error.Status, parsed.Error.Message)
		logger.Error(errMsg.Error())
		return Response{Error: errMsg}
	}

	if resp.StatusCode != http.StatusOK {
		return Response{Error: fmt.Errorf("%w: Gemini returned status %d", ErrBackend, resp.StatusCode)}
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return Response{Error: fmt.Errorf("%w: Gemini response contained no candidates", ErrBackend)}
	}

	var content bytes.Buffer
	for _, part := range parsed.Candidates[0].Content.Parts {
		content.WriteString(part.Text)
	}

	return Response{
		Content: content.String(),
	}
}
