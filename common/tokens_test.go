package common

import "testing"

func TestEstimateTokens(t *testing.T) {
	if EstimateTokens("") != 0 {
		t.Error("Expected 0 tokens for empty text")
	}
	if EstimateTokens("ab") != 1 {
		t.Error("Expected short text to round up to 1 token")
	}
	if got := EstimateTokens(string(make([]byte, 400))); got != 100 {
		t.Errorf("Expected 100 tokens for 400 characters, got %d", got)
	}
}

func TestCountTokensNeverZeroForText(t *testing.T) {
	// Works with or without a reachable tokenizer encoding
	if CountTokens("const x = 1;") <= 0 {
		t.Error("Expected a positive token count for non-empty text")
	}
}
