// Package server exposes the single-file documenter over HTTP: an upload
// page at / and a JSON documentation endpoint at /document.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/repodocs/repodoc/analytics"
	"github.com/repodocs/repodoc/common"
	"github.com/repodocs/repodoc/llm"
	"github.com/repodocs/repodoc/logger"
)

// Server serves the upload UI and the documentation endpoint
type Server struct {
	backend   llm.LLM
	usage     *analytics.Logger
	settings  common.Settings
	maxUpload int64
}

// New creates a Server. usage may be nil, in which case operations are not
// recorded.
func New(backend llm.LLM, usage *analytics.Logger, settings common.Settings) *Server {
	return &Server{
		backend:   backend,
		usage:     usage,
		settings:  settings,
		maxUpload: 10 << 20, // 10 MiB
	}
}

// Handler returns the route mux for the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleUploadPage)
	mux.HandleFunc("/document", s.handleDocument)
	return mux
}

// Start blocks serving on the given port
func (s *Server) Start(port string) error {
	addr := ":" + port
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // documentation calls are slow
	}

	logger.Infof("Listening on http://localhost%s/", addr)
	fmt.Printf("Documentation server running on http://localhost%s/\n", addr)
	return httpServer.ListenAndServe()
}
