package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	digest    DigestService
	generator FeedGenerator
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// DigestService provides assembled digests
type DigestService interface {
	GetDigest(ctx context.Context, variant, lang string) *domain.Digest
}

// FeedGenerator renders a digest as RSS
type FeedGenerator interface {
	GenerateRSS(d *domain.Digest, variant string) (string, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, digest DigestService, generator FeedGenerator, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		digest:    digest,
		generator: generator,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdigest", "worldmonitor", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /digest", s.digestHandler)
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /rss/{variant}", s.rssFeedHandler)
}

// digestHandler returns the assembled digest for the requested variant
// and language. The service never fails, so this always answers 200.
func (s *Server) digestHandler(w http.ResponseWriter, r *http.Request) {
	variant := r.URL.Query().Get("variant")
	lang := r.URL.Query().Get("lang")

	d := s.digest.GetDigest(r.Context(), variant, lang)
	RenderJSON(w, r, http.StatusOK, d)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// rssFeedHandler serves the digest re-exported as an RSS 2.0 feed
func (s *Server) rssFeedHandler(w http.ResponseWriter, r *http.Request) {
	variant := r.PathValue("variant")
	lang := r.URL.Query().Get("lang")

	d := s.digest.GetDigest(r.Context(), variant, lang)

	out, err := s.generator.GenerateRSS(d, variant)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS for %s: %v", variant, err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(out)); err != nil {
		log.Printf("[WARN] failed to write RSS response: %v", err)
	}
}
