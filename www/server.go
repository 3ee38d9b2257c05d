package www

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/angas/chartjs-go/config"
	"github.com/angas/chartjs-go/feed"
	"github.com/angas/chartjs-go/store"
)

type Server struct {
	logger *slog.Logger
	config config.AppConfigApi
	db     *store.Store
	live   *feed.LiveCharts
	hub    *Hub
	tm     *TemplateManager
	mux    *http.ServeMux

	version string
	started time.Time
}

// NewServer wires the routes and starts the websocket hub. live may be nil
// when no feed is configured.
func NewServer(db *store.Store, live *feed.LiveCharts, config config.AppConfigApi, version string) (*Server, error) {
	logger := slog.Default().With("module", "www")
	tm, err := NewTemplateManager(logger, config.WwwDir)
	if err != nil {
		return nil, fmt.Errorf("template manager initialization: %w", err)
	}

	s := &Server{
		logger: logger,
		config: config,
		db:     db,
		live:   live,
		hub:    NewHub(logger),
		tm:     tm,
		mux:    http.NewServeMux(),

		version: version,
		started: time.Now(),
	}

	go s.hub.Run()

	handle := func(pattern, name string, h func(*slog.Logger) http.HandlerFunc) {
		s.mux.Handle(pattern, s.logRequests(h(logger.With(slog.String("handler", name)))))
	}

	handle("GET /{$}", "index", s.indexHandler)
	handle("GET /charts", "charts", s.listChartsHandler)
	handle("GET /charts/{name}", "chart", s.getChartHandler)
	handle("POST /charts/{name}", "chart", s.saveChartHandler)
	handle("DELETE /charts/{name}", "chart", s.deleteChartHandler)
	handle("GET /charts/{name}/snapshots", "snapshots", s.snapshotsHandler)
	handle("GET /preview/{name}", "preview", s.previewHandler)
	handle("GET /samples/{type}", "samples", s.samplesHandler)
	handle("GET /log", "log", s.logHandler)
	handle("GET /info", "info", s.sysInfoHandler)

	s.mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		name := r.Header.Get("User-Agent")
		client, err := NewClient(s.hub, w, r, name)
		if err != nil {
			s.logger.Error("new websocket client failed", slog.Any("error", err))
			return
		}
		s.hub.Register <- client
		go client.WritePump()
		go client.ReadPump()
	})

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("url", r.URL.String()),
			slog.String("remoteAddr", r.RemoteAddr))
		next.ServeHTTP(w, r)
	})
}

type chartUpdate struct {
	Name  string          `json:"name"`
	Chart json.RawMessage `json:"chart"`
}

// PublishChart pushes a chart document to every connected websocket client.
// It fits feed.OnUpdate.
func (s *Server) PublishChart(name string, doc []byte) {
	msg, err := json.Marshal(chartUpdate{Name: name, Chart: doc})
	if err != nil {
		s.logger.Error("encoding chart update failed", slog.String("chart", name), slog.Any("error", err))
		return
	}
	s.hub.Broadcast <- msg
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Address, s.config.Port)
	s.logger.Info("starting server...", slog.String("addr", addr))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErrors := make(chan error, 1)
	go func() {
		srvErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-srvErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	}
}
