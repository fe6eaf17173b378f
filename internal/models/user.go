package models

import "time"

// User is an account created through signup. The ID is opaque to callers:
// the file backend hands out sequential integer strings, the document
// backend hands out generated ObjectID hex. PasswordHash never serializes
// outward; the storage backends persist it under their own record shapes.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}
