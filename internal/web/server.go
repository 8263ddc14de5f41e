// Package web hosts the blog's HTTP surface: the public reading pages and
// the session-gated admin pages.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/lmoreira/quill/internal/blog/article"
	"github.com/lmoreira/quill/internal/blog/auth"
	"github.com/lmoreira/quill/internal/blog/render"
	"github.com/lmoreira/quill/internal/platform/timeouts"
	"github.com/lmoreira/quill/internal/web/platform/httpx"
	"github.com/lmoreira/quill/internal/web/routepath"
)

// Config defines the inputs for the blog HTTP server.
type Config struct {
	HTTPAddr string
}

// Server hosts the blog HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler assembles the route handlers. It is the test-oriented
// entrypoint; NewServer wraps it with server lifecycle.
func NewHandler(articles *article.Service, sessions *auth.Manager, renderer render.Renderer) http.Handler {
	h := &handler{
		articles: articles,
		sessions: sessions,
		renderer: renderer,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET "+routepath.ArticlePattern, h.handleArticle)

	mux.HandleFunc("GET "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc("POST "+routepath.Login, h.handleLoginSubmit)
	mux.HandleFunc("GET "+routepath.Logout, h.requireSession(h.handleLogout))

	mux.HandleFunc("GET "+routepath.Upload, h.requireSession(h.handleUploadPage))
	mux.HandleFunc("POST "+routepath.Upload, h.requireSession(h.handleUploadSubmit))
	mux.HandleFunc("GET "+routepath.EditPattern, h.requireSession(h.handleEditPage))
	mux.HandleFunc("POST "+routepath.EditPattern, h.requireSession(h.handleEditSubmit))
	mux.HandleFunc("POST "+routepath.DeletePattern, h.requireSession(h.handleDeleteSubmit))

	// Everything else is a themed 404.
	mux.HandleFunc("/", h.handleNotFound)

	return httpx.Chain(mux, httpx.Recover, httpx.Logging)
}

// NewServer builds a configured blog server.
func NewServer(config Config, articles *article.Service, sessions *auth.Manager, renderer render.Renderer) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if articles == nil {
		return nil, errors.New("article service is required")
	}
	if sessions == nil {
		return nil, errors.New("session manager is required")
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(articles, sessions, renderer),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("blog server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("blog listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	}
}
