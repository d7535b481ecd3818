// @title           Anlagen-Register API
// @version         1.0
// @description     Registry of MaStR solar installations with operator contact data.
// @host            localhost
// @schemes         http https
// @BasePath        /api
package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"anlagen-register/internal/api"
	"anlagen-register/internal/config"
	"anlagen-register/internal/database"
	"anlagen-register/internal/session"
	"anlagen-register/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "anlagen-register/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Konfiguration konnte nicht geladen werden: %v", err)
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Verbindung zur Datenbank fehlgeschlagen: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Datenbank nicht erreichbar: %v", err)
	}
	log.Println("Mit der Datenbank verbunden")

	wsHub := websocket.NewHub()
	go wsHub.Run()

	store := database.NewStore(dbpool)
	gate := session.NewGate(cfg.Auth.MaxSessions, cfg.Auth.SessionTimeout)
	server := api.NewServer(cfg, store, gate, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.RequestIDMiddleware)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	indexPage := filepath.Join(cfg.Server.StaticDir, "index.html")
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, indexPage)
	})
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(cfg.Server.StaticDir))))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}

	r.Post("/api/login", server.LoginHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.NotFound(notFound)
		r.Get("/stats", server.StatsHandler)
		r.Get("/anlagen", server.ListAnlagenHandler)
		r.Get("/anlagen/{anlageId}", server.GetAnlageHandler)
		r.Put("/anlagen/{anlageId}", server.UpdateAnlageHandler)
		r.Post("/anlagen/{anlageId}/notizen", server.CreateNotizHandler)
		r.Delete("/notizen/{notizId}", server.DeleteNotizHandler)
		r.Get("/export/csv", server.ExportCSVHandler)
		r.Get("/ws", server.ServeWsHandler)
	})

	r.NotFound(notFound)

	log.Printf("Server startet auf %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		log.Fatalf("Server konnte nicht gestartet werden: %v", err)
	}
}
