package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"smart-meal-planner/internal/plan"
	"smart-meal-planner/internal/planner"
	"smart-meal-planner/internal/snapshot"
)

// SnapshotStore is the persistence surface the snapshot handlers need.
// *snapshot.Gateway satisfies it.
type SnapshotStore interface {
	SavePlan(ctx context.Context, token, name string, prefs plan.Preferences, data plan.WeeklyPlanData) (string, error)
	ListPlans(ctx context.Context, token string) ([]snapshot.SavedPlan, error)
	DeletePlan(ctx context.Context, token, id string) error
	SaveRecipe(ctx context.Context, token string, rec plan.Recipe) (string, error)
	ListRecipes(ctx context.Context, token string) ([]snapshot.SavedRecipe, error)
	DeleteRecipe(ctx context.Context, token, id string) error
	SaveList(ctx context.Context, token, name string, list []plan.ShoppingListCategory) (string, error)
	ListLists(ctx context.Context, token string) ([]snapshot.SavedList, error)
	DeleteList(ctx context.Context, token, id string) error
}

// Server exposes the planning sessions, the snapshot store and the
// export surface over HTTP for the browser frontend.
type Server struct {
	svc    *planner.Service
	store  SnapshotStore
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*planner.Session
}

// NewServer wires the handlers. store may be nil when no Supabase
// project is configured; snapshot routes then answer 503.
func NewServer(svc *planner.Service, store SnapshotStore, logger *zap.Logger) *Server {
	return &Server{
		svc:      svc,
		store:    store,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*planner.Session),
	}
}

// Router builds the chi router with middleware and all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/plan", func(r chi.Router) {
			r.Post("/generate", s.handleGeneratePlan)
			r.Post("/regenerate", s.handleRegenerateDay)
			r.Post("/regenerate/cancel", s.handleCancelDay)
			r.Get("/", s.handleGetPlan)
			r.Delete("/", s.handleDiscardPlan)
		})

		r.Route("/snapshots/{kind}", func(r chi.Router) {
			r.Get("/", s.handleListSnapshots)
			r.Post("/", s.handleSaveSnapshot)
			r.Delete("/{id}", s.handleDeleteSnapshot)
		})

		r.Route("/export", func(r chi.Router) {
			r.Post("/markdown", s.handleExportMarkdown)
			r.Post("/csv", s.handleExportCSV)
			r.Post("/json", s.handleExportJSON)
		})
	})

	return r
}

// session returns the caller's planning session, creating it on first
// use. Sessions are keyed by bearer token; unauthenticated callers
// share one anonymous session.
func (s *Server) session(r *http.Request) *planner.Session {
	key := bearerToken(r)
	if key == "" {
		key = "anonymous"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[key]
	if !ok {
		sess = planner.NewSession(s.svc)
		s.sessions[key] = sess
	}
	return sess
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
