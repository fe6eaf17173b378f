package storage

import (
	"context"
	"errors"

	"github.com/maryamazeem12/websitelive/internal/models"
)

// Backend kinds reported by Kind and surfaced through /api/health.
const (
	KindMongo = "mongodb"
	KindFile  = "file_storage"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// Store captures the persistence operations handlers need. The concrete
// backend is chosen exactly once by Open and never switched at runtime;
// handlers learn which one is active only through Kind.
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	InsertUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id string) (models.Product, error)
	InsertProduct(ctx context.Context, product models.Product) (models.Product, error)

	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)

	Kind() string
	Close(ctx context.Context) error
}
