package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/documenter"
	"github.com/repodocs/repodoc/llm"
	"github.com/repodocs/repodoc/prompt"
)

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := io.WriteString(part, content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/document", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newTestServer(backend llm.LLM) *Server {
	return New(backend, nil, common.WithDefaultSettings())
}

func TestUploadPage(t *testing.T) {
	srv := newTestServer(llm.NewMock(100))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "TypeScript Documentation Generator") {
		t.Error("Expected upload page content")
	}
}

func TestDocumentRejectsNonTypeScript(t *testing.T) {
	srv := newTestServer(llm.NewMock(100))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "main.py", "print(1)"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only TypeScript files are accepted") {
		t.Errorf("Unexpected error body: %s", rec.Body.String())
	}
}

func TestDocumentRejectsGet(t *testing.T) {
	srv := newTestServer(llm.NewMock(100))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/document", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %d", rec.Code)
	}
}

func TestDocumentSuccess(t *testing.T) {
	backend := llm.NewMock(100000, "/** documented */\nconst x = 1;")
	srv := newTestServer(backend)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "app.ts", "const x = 1;"))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DocumentationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.DocumentedCode != "/** documented */\nconst x = 1;" {
		t.Errorf("Unexpected documented code: %q", resp.DocumentedCode)
	}
	if resp.OriginalCode != "const x = 1;" {
		t.Errorf("Unexpected original code: %q", resp.OriginalCode)
	}
	if resp.TokenCount <= 0 {
		t.Errorf("Expected a positive token count, got %d", resp.TokenCount)
	}
}

func TestDocumentTokenCountCoversAllChunks(t *testing.T) {
	code := strings.Repeat("const value = 1;\n", 300)
	backend := llm.NewMock(2000, "part one", "part two", "part three")
	srv := newTestServer(backend)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "app.ts", code))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DocumentationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	chunks, err := documenter.Split(code, backend.MaxChunkChars())
	if err != nil {
		t.Fatalf("Failed to split code: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("Expected a multi-chunk upload, got %d chunk(s)", len(chunks))
	}

	buildPrompt := prompt.ForFile(common.WithDefaultSettings())
	want := common.CountTokens(resp.DocumentedCode)
	for _, chunk := range chunks {
		want += common.CountTokens(buildPrompt(chunk.Text, chunk.Index, chunk.Total).UserPrompt)
	}
	if resp.TokenCount != want {
		t.Errorf("Expected token count %d covering every prompt sent, got %d", want, resp.TokenCount)
	}

	singlePrompt := common.CountTokens(buildPrompt(code, 1, 1).UserPrompt) +
		common.CountTokens(resp.DocumentedCode)
	if resp.TokenCount <= singlePrompt {
		t.Errorf("Expected token count above the single-prompt figure %d, got %d", singlePrompt, resp.TokenCount)
	}
}

func TestDocumentBackendFailure(t *testing.T) {
	backend := llm.NewMock(100000)
	backend.FailOn = 1
	srv := newTestServer(backend)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, uploadRequest(t, "app.ts", "const x = 1;"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("Expected an error message in the response")
	}
}
