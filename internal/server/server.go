package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meltforce/hybridcoach/internal/athlete"
)

// UserResolver maps a login to a local user ID, creating the row on first
// contact.
type UserResolver interface {
	GetOrCreateUser(ctx context.Context, login, displayName string) (int, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	svc        *athlete.Service
	users      UserResolver
	log        *slog.Logger
	apiKey     string
	tsIdentity func(http.Handler) http.Handler
	router     chi.Router
}

// New creates a new Server with all routes configured.
func New(svc *athlete.Service, users UserResolver, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		users:  users,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale switches identity to tailnet WhoIs lookups. Must be called
// before serving.
func (s *Server) SetTailscale(lc WhoIser) {
	s.tsIdentity = TailscaleIdentity(lc, s.users, s.log)
}

// SetMCP mounts the MCP streamable HTTP handler at /mcp behind the same
// identity as the REST API. Must be called before serving.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(s.identity).Handle("/mcp", h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(Instrument)
	s.router.Use(CORS)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identity)

		r.Get("/me", s.handleMe)
		r.Get("/readiness", s.handleReadiness)
		r.Get("/fatigue", s.handleFatigue)
		r.Post("/plan", s.handlePlan)
		r.Post("/checkin", s.handleCheckIn)

		r.Get("/sessions", s.handleListSessions)
		r.Post("/sessions", s.handleLogSession)

		r.Get("/injuries", s.handleListInjuries)
		r.Post("/injuries", s.handleReportInjury)
		r.Patch("/injuries/{id}", s.handleUpdateInjury)

		r.Get("/daily/today", s.handleToday)
		r.Put("/daily/today", s.handleUpdateToday)

		r.Post("/coach/chat", s.handleChat)
		r.Get("/coach/history", s.handleChatHistory)

		r.Get("/tasks/today", s.handleTasks)
		r.Post("/tasks/{id}/complete", s.handleCompleteTask)

		r.Get("/catalog/exercises", s.handleExercises)
		r.Get("/catalog/substitute", s.handleSubstitute)
	})
}

// identity resolves the caller: tailnet WhoIs when tailscale is set,
// otherwise the API key plus the dev user.
func (s *Server) identity(next http.Handler) http.Handler {
	dev := APIKeyAuth(s.apiKey)(LocalIdentity(s.users, s.log)(next))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.tsIdentity != nil {
			s.tsIdentity(next).ServeHTTP(w, r)
			return
		}
		dev.ServeHTTP(w, r)
	})
}
