package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the chi router shared by the Lambda entrypoint and the
// local development server. In Lambda the media routes are protected by the
// gateway's token authorizer, so mediaMiddlewares is empty there; the local
// server passes the in-process JWT middleware instead.
func NewRouter(authHandler *AuthHandler, mediaHandler *MediaHandler, mediaMiddlewares ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	r.Route("/media", func(r chi.Router) {
		for _, mw := range mediaMiddlewares {
			r.Use(mw)
		}

		r.Post("/", mediaHandler.Create)
		r.Get("/", mediaHandler.List)
		r.Get("/{mediaId}", mediaHandler.Get)
		r.Put("/{mediaId}", mediaHandler.Update)
		r.Delete("/{mediaId}", mediaHandler.Delete)
	})

	return r
}
