package handlers

import (
	"net/http"
	"time"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// HealthHandler reports which backend the process settled on at startup.
type HealthHandler struct {
	store storage.Store
}

// NewHealthHandler creates the health endpoint handler.
func NewHealthHandler(store storage.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Register wires the handler into the router.
func (h *HealthHandler) Register(rt *router.Router) {
	rt.Handle(http.MethodGet, "/api/health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"database":  h.store.Kind(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
