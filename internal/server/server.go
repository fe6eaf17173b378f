package server

import (
	"context"
	"net/http"
	"time"

	"github.com/maryamazeem12/websitelive/internal/config"
	"github.com/maryamazeem12/websitelive/internal/http/handlers"
	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/middleware"
	"github.com/maryamazeem12/websitelive/internal/password"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store, hasher password.Hasher) *Server {
	rt := router.New(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, http.StatusNotFound, "Endpoint not found")
	})
	handlers.NewAuthHandler(store, hasher).Register(rt)
	handlers.NewUserHandler(store).Register(rt)
	handlers.NewProductHandler(store).Register(rt)
	handlers.NewOrderHandler(store).Register(rt)
	handlers.NewHealthHandler(store).Register(rt)

	handler := middleware.CORS(middleware.Logging(rt))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
