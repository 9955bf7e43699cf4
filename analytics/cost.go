package analytics

import "strings"

// Blended $/1K-token rates per model family. Coarse on purpose: the log
// stores one combined prompt+response token count, so the estimate cannot
// separate input and output pricing.
var costPer1KTokens = []struct {
	prefix string
	rate   float64
}{
	{"claude-3.5-haiku", 0.002},
	{"claude", 0.009},
	{"gpt-4-turbo", 0.02},
	{"gpt-4", 0.045},
	{"gpt-3.5", 0.001},
	{"gemini", 0.0005},
}

// EstimateCost converts a token count into an estimated dollar cost for the
// given model. Unknown models cost zero rather than guessing.
func EstimateCost(model string, tokens int) float64 {
	for _, entry := range costPer1KTokens {
		if strings.HasPrefix(model, entry.prefix) {
			return float64(tokens) / 1000 * entry.rate
		}
	}
	return 0
}
