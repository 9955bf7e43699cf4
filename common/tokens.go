package common

import (
	"github.com/pkoukk/tiktoken-go"
	"github.com/repodocs/repodoc/logger"
)

// tokenizerModel is the encoding used for token accounting. Counts are
// reported to the user and the analytics log; they never drive chunking.
const tokenizerModel = "gpt-3.5-turbo"

// charsPerToken is the heuristic used when the tokenizer encoding is
// unavailable (for example offline): roughly four characters per token.
const charsPerToken = 4

// CountTokens returns the number of tokens in text, falling back to a
// character-count heuristic when the encoding cannot be loaded.
func CountTokens(text string) int {
	enc, err := tiktoken.EncodingForModel(tokenizerModel)
	if err != nil {
		logger.Debugf("Tokenizer unavailable, estimating: %v", err)
		return EstimateTokens(text)
	}
	return len(enc.Encode(text, nil, nil))
}

// EstimateTokens approximates the token count of text without a tokenizer.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	tokens := len(text) / charsPerToken
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}
