package handlers

import (
	"net/http"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/models"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// UserHandler serves the admin user listing.
type UserHandler struct {
	store storage.Store
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.Store) *UserHandler {
	return &UserHandler{store: store}
}

// Register attaches the user routes.
func (h *UserHandler) Register(rt *router.Router) {
	rt.Handle(http.MethodGet, "/api/users", h.handleList)
}

func (h *UserHandler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []models.User{}
	}
	// Hashes are wiped before the payload is assembled; the json:"-" tag
	// on the model keeps them out of the encoder either way.
	for i := range users {
		users[i].PasswordHash = ""
	}
	respond.JSON(w, http.StatusOK, map[string]any{"users": users})
}
