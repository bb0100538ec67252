package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// App wires the store, the token authority and configuration into the HTTP
// surface. Everything it holds is read-only after startup.
type App struct {
	cfg    Config
	store  Store
	tokens *TokenAuth
}

func newApp(cfg Config, store Store) *App {
	return &App{
		cfg:    cfg,
		store:  store,
		tokens: newTokenAuth(cfg.JWTSecret, cfg.TokenTTL),
	}
}

func (a *App) router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(recoverJSON)

	// allow comma-separated list of origins
	var origins []string
	for _, p := range strings.Split(a.cfg.CORSOrigin, ",") {
		if o := strings.TrimRight(strings.TrimSpace(p), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Social Blog App!"})
	})

	r.Post("/auth/signup", a.handleSignUp)
	r.Post("/auth/signin", a.handleSignIn)

	r.Group(func(pr chi.Router) {
		pr.Use(a.requireAuth)

		pr.Post("/post", a.handleCreatePost)
		pr.Get("/post", a.handleListPosts)
		pr.Get("/post/{postId}", a.handleGetPost)
		pr.Patch("/post/{postId}", a.handleUpdatePost)
		pr.Delete("/post/{postId}", a.handleDeletePost)

		pr.Get("/user", a.handleGetProfile)
		pr.Patch("/user", a.handleUpdateProfile)
		pr.Delete("/user", a.handleDeleteProfile)
	})

	// every miss gets the same JSON body, never a bare 404 page
	notFound := func(w http.ResponseWriter, _ *http.Request) {
		errorJSON(w, http.StatusBadRequest, "Page Not Found!")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

// recoverJSON is the final catch-all: log the panic, answer with the generic
// internal-error body. Internal details stay out of the response.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[api] panic on %s %s: %v", r.Method, r.URL.Path, rec)
				errorJSON(w, http.StatusInternalServerError, msgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
