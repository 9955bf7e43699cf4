package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/documenter"
	"github.com/repodocs/repodoc/gather"
	"github.com/repodocs/repodoc/logger"
	"github.com/repodocs/repodoc/prompt"
)

// DocumentationResponse is the JSON body returned by POST /document
type DocumentationResponse struct {
	DocumentedCode string `json:"documented_code"`
	TokenCount     int    `json:"token_count"`
	OriginalCode   string `json:"original_code"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, uploadPage)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Only POST method is allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".ts") && !strings.HasSuffix(header.Filename, ".tsx") {
		writeError(w, http.StatusBadRequest, "Only TypeScript files are accepted")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read upload: "+err.Error())
		return
	}
	code := string(content)

	doc := documenter.New(s.backend, prompt.ForFile(s.settings))
	documented, err := doc.Document(code)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, documenter.ErrEmptyContent) || errors.Is(err, gather.ErrUnavailable) {
			status = http.StatusBadRequest
		}
		logger.Errorf("Documentation failed for %s: %v", header.Filename, err)
		writeError(w, status, err.Error())
		return
	}

	totalTokens := doc.TokenCount(code, documented)

	if s.usage != nil {
		op := analytics.Operation{
			SourceFile:    header.Filename,
			OperationType: analytics.OperationFileDoc,
			FileSize:      len(content),
			TokenCount:    totalTokens,
			EstimatedCost: analytics.EstimateCost(s.backend.Model(), totalTokens),
		}
		if err := s.usage.LogOperation(r.Context(), op); err != nil {
			logger.Warnf("Could not record analytics for %s: %v", header.Filename, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(DocumentationResponse{
		DocumentedCode: documented,
		TokenCount:     totalTokens,
		OriginalCode:   code,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
