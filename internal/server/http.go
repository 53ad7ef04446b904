package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mithrel/wpreader/internal/present/format"
	"github.com/mithrel/wpreader/internal/view"
	"github.com/mithrel/wpreader/pkg/wp"
)

// Server serves the HTML display of a fixed set of items.
type Server struct {
	site  wp.Site
	style format.Style
	log   *zap.Logger
	items []wp.Item
	byID  map[int]wp.Item
}

func New(site wp.Site, style format.Style, log *zap.Logger, items []wp.Item) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	byID := make(map[int]wp.Item, len(items))
	for _, it := range items {
		if _, dup := byID[it.ItemID()]; !dup {
			byID[it.ItemID()] = it
		}
	}
	return &Server{site: site, style: style, log: log, items: items, byID: byID}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/items", http.StatusFound)
	})
	mux.HandleFunc("GET /items", s.handleIndex)
	mux.HandleFunc("GET /items/{id}", s.handleItem)
	return s.logRequests(mux)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	name := s.site.Name
	if name == "" {
		name = s.site.Domain
	}
	if err := format.WriteHTMLIndex(w, name, "/items/", view.SummarizeAll(s.items)); err != nil {
		s.log.Error("render index", zap.Error(err))
	}
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	item, ok := s.byID[id]
	if !ok {
		http.NotFound(w, r)
		return
	}
	d := view.Build(item, s.site, nil)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := format.WriteHTMLDisplay(w, d, s.style, "/items"); err != nil {
		s.log.Error("render item", zap.Int("id", id), zap.Error(err))
	}
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
// ready, if non-nil, receives the bound address.
func (s *Server) Run(ctx context.Context, addr string, ready chan<- string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: s.Router(), ReadHeaderTimeout: 5 * time.Second}
	s.log.Info("serving items", zap.String("addr", ln.Addr().String()), zap.Int("count", len(s.items)))
	if ready != nil {
		ready <- ln.Addr().String()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
