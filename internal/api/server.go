package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gustfront/meteogram/internal/ingest"
	"github.com/gustfront/meteogram/internal/store"
)

// Site is the charted location. The front-end's location picker swaps it per
// request; these are only the defaults.
type Site struct {
	Latitude     float64
	Longitude    float64
	ForecastDays int
}

type Server struct {
	store   *store.Store
	fetcher *ingest.Fetcher
	port    string
	loc     *time.Location
	site    Site
}

func NewServer(store *store.Store, fetcher *ingest.Fetcher, port string, loc *time.Location, site Site) *Server {
	return &Server{
		store:   store,
		fetcher: fetcher,
		port:    port,
		loc:     loc,
		site:    site,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/series", s.handleSeries)
	mux.HandleFunc("/api/compare", s.handleCompare)
	mux.HandleFunc("/api/preferences", s.handlePreferences)
	mux.HandleFunc("/api/models", s.handleModels)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
