package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

// StatusSource es lo que expone el scheduler para consulta.
type StatusSource interface {
	LastOutcome() domain.Outcome
	NextChange() (time.Time, bool)
	CountdownRunning() bool
}

type Server struct {
	src     StatusSource
	metrics http.Handler
	mux     *http.ServeMux
	srv     *http.Server
}

// New arma las rutas y el http.Server; metrics puede ser nil (sin /metrics).
func New(addr string, src StatusSource, metrics http.Handler) *Server {
	s := &Server{src: src, metrics: metrics, mux: http.NewServeMux()}
	s.routes()
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", getOnly(s.handleHealth))
	s.mux.HandleFunc("/status", getOnly(s.handleStatus))
	if s.metrics != nil {
		s.mux.Handle("/metrics", getOnly(s.metrics.ServeHTTP))
	}
}

func (s *Server) Handler() http.Handler { return s.mux }

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type rotationView struct {
	ID       string    `json:"id"`
	Nickname string    `json:"nickname,omitempty"`
	Status   string    `json:"status"`
	Error    string    `json:"error,omitempty"`
	At       time.Time `json:"at"`
}

type statusView struct {
	NextChange       *time.Time    `json:"next_change"`
	CountdownRunning bool          `json:"countdown_running"`
	LastRotation     *rotationView `json:"last_rotation"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var view statusView
	if next, ok := s.src.NextChange(); ok {
		view.NextChange = &next
	}
	view.CountdownRunning = s.src.CountdownRunning()

	if last := s.src.LastOutcome(); last.ID != "" {
		rv := &rotationView{
			ID:       last.ID,
			Nickname: last.Nickname,
			Status:   string(last.Status),
			At:       last.StartedAt,
		}
		if last.Err != nil {
			rv.Error = last.Err.Error()
		}
		view.LastRotation = rv
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("status encode: %v", err)
	}
}

// Start bloquea hasta que el server se cierra. Un Shutdown no se reporta como error.
func (s *Server) Start() error {
	log.Printf("🌐 HTTP listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown puede llamarse antes que Start: en ese caso Start vuelve enseguida.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
