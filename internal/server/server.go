// Package server is the HTTP presentation adapter: it translates JSON
// requests into calls on the session manager and the catalog collections,
// the role the browser UI played in the original app.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"watchshelf/internal/catalog"
	"watchshelf/internal/config"
	"watchshelf/internal/models"
	"watchshelf/internal/session"
)

// Deps are the core services the router exposes.
type Deps struct {
	Sessions *session.Manager
	Movies   *catalog.Collection[models.Movie]
	Shows    *catalog.Collection[models.TVShow]
	Log      *slog.Logger
}

// Router builds the chi router with all routes and middleware registered.
func Router(deps Deps) chi.Router {
	authH := newAuthHandler(deps.Sessions, deps.Log)
	moviesH := newResource[models.Movie, models.MoviePatch](
		"movies", deps.Movies, catalog.MovieFields, deps.Sessions, deps.Log)
	showsH := newResource[models.TVShow, models.TVShowPatch](
		"shows", deps.Shows, catalog.ShowFields, deps.Sessions, deps.Log)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		requestLogger(deps.Log),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.register)
			r.Post("/login", authH.login)
			r.Post("/logout", authH.logout)
			r.Get("/me", authH.me)
			r.Post("/password", authH.changePassword)
			r.Post("/reset", authH.resetPassword)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/", moviesH.list)
			r.Post("/", moviesH.create)
			r.Put("/{id}", moviesH.update)
			r.Delete("/{id}", moviesH.remove)
		})

		r.Route("/shows", func(r chi.Router) {
			r.Get("/", showsH.list)
			r.Post("/", showsH.create)
			r.Put("/{id}", showsH.update)
			r.Delete("/{id}", showsH.remove)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, OK())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// New builds the HTTP server around the router.
func New(cfg *config.Config, deps Deps) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      Router(deps),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
