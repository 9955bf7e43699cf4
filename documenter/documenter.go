// Package documenter turns arbitrarily large source text into a single
// documentation artifact: it splits the text to a backend's character
// budget, prompts the backend once per chunk in order, and concatenates the
// responses.
package documenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/llm"
	"github.com/repodocs/repodoc/logger"
	"github.com/repodocs/repodoc/prompt"
)

var (
	// ErrEmptyContent is returned when there is nothing to document
	ErrEmptyContent = errors.New("content is empty")
	// ErrInvalidChunkSize is returned for a non-positive chunk budget
	ErrInvalidChunkSize = errors.New("chunk size must be positive")
)

// Chunk is one contiguous slice of the source content. Index is 1-based;
// concatenating all chunks in index order reproduces the source exactly.
type Chunk struct {
	Text  string
	Index int
	Total int
}

// Split partitions content into the minimum number of contiguous slices of
// at most maxChunkChars bytes each. Boundaries are byte positions with no
// awareness of lines, tokens or file markers; that is a documented
// limitation of the character-budget approach, not something Split tries to
// compensate for.
func Split(content string, maxChunkChars int) ([]Chunk, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if maxChunkChars <= 0 {
		return nil, ErrInvalidChunkSize
	}

	total := (len(content) + maxChunkChars - 1) / maxChunkChars
	chunks := make([]Chunk, 0, total)
	for i := 0; i < len(content); i += maxChunkChars {
		end := i + maxChunkChars
		if end > len(content) {
			end = len(content)
		}
		chunks = append(chunks, Chunk{
			Text:  content[i:end],
			Index: len(chunks) + 1,
			Total: total,
		})
	}
	return chunks, nil
}

// PromptFunc wraps a chunk in an instruction template, annotated with its
// position among siblings when the content was split.
type PromptFunc func(chunk string, index, total int) llm.Request

// Documenter drives one backend with one prompt style
type Documenter struct {
	backend     llm.LLM
	buildPrompt PromptFunc
}

// New creates a Documenter for the given backend and prompt builder
func New(backend llm.LLM, buildPrompt PromptFunc) *Documenter {
	return &Documenter{
		backend:     backend,
		buildPrompt: buildPrompt,
	}
}

// Document splits content against the backend's chunk budget, prompts the
// backend for each chunk strictly in order, and joins the responses. Calls
// are sequential: output order must mirror input order and providers
// rate-limit per key. The first backend error aborts the whole run; earlier
// responses are discarded and no partial document is returned.
func (d *Documenter) Document(content string) (string, error) {
	chunks, err := Split(content, d.backend.MaxChunkChars())
	if err != nil {
		return "", err
	}

	responses := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		logger.Infof("Processing chunk %d of %d...", chunk.Index, chunk.Total)

		resp := d.backend.Prompt(d.buildPrompt(chunk.Text, chunk.Index, chunk.Total))
		if resp.Error != nil {
			return "", fmt.Errorf("chunk %d of %d: %w", chunk.Index, chunk.Total, resp.Error)
		}
		responses = append(responses, resp.Content)
	}

	if len(chunks) > 1 {
		responses = append([]string{prompt.Disclaimer(len(chunks))}, responses...)
	}
	return strings.Join(responses, "\n\n"), nil
}

// TokenCount reports the tokens billed for one Document run: every prompt
// actually sent for content, mirroring the split Document performed, plus
// the response.
func (d *Documenter) TokenCount(content, response string) int {
	total := common.CountTokens(response)

	chunks, err := Split(content, d.backend.MaxChunkChars())
	if err != nil {
		return total
	}
	for _, chunk := range chunks {
		total += common.CountTokens(d.buildPrompt(chunk.Text, chunk.Index, chunk.Total).UserPrompt)
	}
	return total
}
