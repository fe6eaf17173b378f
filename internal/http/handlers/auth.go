package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/maryamazeem12/websitelive/internal/http/respond"
	"github.com/maryamazeem12/websitelive/internal/models"
	"github.com/maryamazeem12/websitelive/internal/password"
	"github.com/maryamazeem12/websitelive/internal/router"
	"github.com/maryamazeem12/websitelive/internal/storage"
)

// AuthHandler owns the signup and login endpoints.
type AuthHandler struct {
	store  storage.Store
	hasher password.Hasher
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.Store, hasher password.Hasher) *AuthHandler {
	return &AuthHandler{store: store, hasher: hasher}
}

// Register attaches auth routes.
func (h *AuthHandler) Register(rt *router.Router) {
	rt.Handle(http.MethodPost, "/api/signup", h.handleSignup)
	rt.Handle(http.MethodPost, "/api/login", h.handleLogin)
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userSummary is the only user shape auth responses ever carry.
type userSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	LoginTime string `json:"login_time,omitempty"`
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		respond.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if len(req.Password) < 6 {
		respond.Error(w, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	// Advisory existence check. The insert below is a separate call, so
	// two concurrent signups for the same email can both pass here; the
	// mongo backend still rejects the loser on its unique index, the
	// file backend accepts the duplicate.
	_, err := h.store.FindUserByEmail(r.Context(), email)
	switch {
	case err == nil:
		respond.Error(w, http.StatusBadRequest, "User with this email already exists")
		return
	case !errors.Is(err, storage.ErrNotFound):
		log.Printf("signup: lookup %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	created, err := h.store.InsertUser(r.Context(), models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			respond.Error(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		log.Printf("signup: insert %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    userSummary{ID: created.ID, Name: created.Name, Email: created.Email},
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.store.FindUserByEmail(r.Context(), email)
	if err != nil {
		// Unknown email answers exactly like a wrong password, so the
		// status code leaks nothing about which emails exist.
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login: lookup %s: %v", email, err)
		respond.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !h.hasher.Verify(req.Password, user.PasswordHash) {
		respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user": userSummary{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			LoginTime: time.Now().UTC().Format(time.RFC3339),
		},
	})
}
