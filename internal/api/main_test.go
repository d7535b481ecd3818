package api

import (
	"context"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"anlagen-register/internal/auth"
	"anlagen-register/internal/config"
	"anlagen-register/internal/database"
	"anlagen-register/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testServer *Server
	testCfg    *config.Config
	testPool   *pgxpool.Pool
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:14-alpine",
		postgres.WithDatabase("test_api_db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		),
	)
	if err != nil {
		log.Fatalf("Could not start postgres: %s", err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Could not get connection string: %s", err)
	}

	testPool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	schema, err := os.ReadFile("../../db/init.sql")
	if err != nil {
		log.Fatalf("Could not read schema file: %s", err)
	}
	if _, err := testPool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("Could not apply schema: %s", err)
	}

	testCfg = &config.Config{
		Auth: config.AuthConfig{
			Password:       "7715",
			MaxSessions:    2,
			SessionTimeout: 30 * time.Minute,
		},
	}

	store := database.NewStore(testPool)
	gate := session.NewGate(testCfg.Auth.MaxSessions, testCfg.Auth.SessionTimeout)
	testServer = NewServer(testCfg, store, gate, nil)

	os.Exit(m.Run())
}

// newAPIRouter mounts the protected routes the way cmd/server does, so the
// tests exercise the auth middleware and URL params together.
func newAPIRouter(s *Server) http.Handler {
	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}

	r := chi.NewRouter()
	r.Post("/api/login", s.LoginHandler)
	r.Route("/api", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.NotFound(notFound)
		r.Get("/stats", s.StatsHandler)
		r.Get("/anlagen", s.ListAnlagenHandler)
		r.Get("/anlagen/{anlageId}", s.GetAnlageHandler)
		r.Put("/anlagen/{anlageId}", s.UpdateAnlageHandler)
		r.Post("/anlagen/{anlageId}/notizen", s.CreateNotizHandler)
		r.Delete("/notizen/{notizId}", s.DeleteNotizHandler)
		r.Get("/export/csv", s.ExportCSVHandler)
	})
	r.NotFound(notFound)
	return r
}

func validAuthCookie() *http.Cookie {
	return &http.Cookie{Name: auth.CookieName, Value: auth.SessionToken("7715")}
}
