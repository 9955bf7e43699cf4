package llm

import "fmt"

// Mock is an LLM implementation for tests. It replays scripted responses in
// order and can be told to fail on a given call.
type Mock struct {
	// Responses is replayed one entry per Prompt call. When exhausted,
	// Prompt answers with a generated placeholder.
	Responses []string
	// FailOn makes the n-th call (1-based) return an error. Zero disables.
	FailOn int
	// ChunkChars is the advertised chunk budget
	ChunkChars int

	// Requests records every prompt received, in call order
	Requests []Request

	calls int
}

// NewMock creates a mock backend with the given chunk budget
func NewMock(chunkChars int, responses ...string) *Mock {
	return &Mock{
		Responses:  responses,
		ChunkChars: chunkChars,
	}
}

// MaxChunkChars returns the advertised chunk budget
func (m *Mock) MaxChunkChars() int {
	if m.ChunkChars <= 0 {
		return OpenAIChunkChars
	}
	return m.ChunkChars
}

// Model returns the mock model identifier
func (m *Mock) Model() string {
	return "mock"
}

// Prompt replays the next scripted response
func (m *Mock) Prompt(req Request) Response {
	m.calls++
	m.Requests = append(m.Requests, req)

	if m.FailOn > 0 && m.calls == m.FailOn {
		return Response{Error: fmt.Errorf("%w: mock failure on call %d", ErrBackend, m.calls)}
	}

	if m.calls <= len(m.Responses) {
		return Response{Content: m.Responses[m.calls-1]}
	}
	return Response{Content: fmt.Sprintf("mock response %d", m.calls)}
}
