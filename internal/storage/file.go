package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/maryamazeem12/websitelive/internal/models"
)

// Ensure FileStore satisfies the Store interface at compile time.
var _ Store = (*FileStore)(nil)

// FileStore keeps the user list and the product catalog as two flat JSON
// arrays, reread in full on every query and rewritten in full on every
// insert. The mutex serializes readers and writers within this process
// only; a second process writing the same files races, and the last
// writer wins.
type FileStore struct {
	usersPath    string
	productsPath string
	mu           sync.Mutex
}

// NewFileStore prepares the data directory holding users.json and
// products.json. Missing files read as empty lists.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{
		usersPath:    filepath.Join(dir, "users.json"),
		productsPath: filepath.Join(dir, "products.json"),
	}, nil
}

// Kind reports the backend name used by the health endpoint.
func (s *FileStore) Kind() string { return KindFile }

// Close is a no-op; files are opened per operation.
func (s *FileStore) Close(context.Context) error { return nil }

// fileUser is the on-disk record; unlike models.User it serializes the
// password hash.
type fileUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

func (u fileUser) toModel() models.User {
	return models.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
		IsActive:     u.IsActive,
	}
}

// FindUserByEmail scans the user list linearly.
func (s *FileStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := loadJSON[fileUser](s.usersPath)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u.toModel(), nil
		}
	}
	return models.User{}, ErrNotFound
}

// InsertUser appends the user and rewrites the whole file. The id is the
// current count plus one, formatted as a string. No duplicate check
// happens here: the handler's pre-insert lookup and this append are two
// separate calls, so concurrent signups with the same email can both land.
func (s *FileStore) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := loadJSON[fileUser](s.usersPath)
	if err != nil {
		return models.User{}, err
	}
	user.ID = strconv.Itoa(len(users) + 1)
	users = append(users, fileUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		IsActive:  user.IsActive,
	})
	if err := saveJSON(s.usersPath, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListUsers loads the full user file.
func (s *FileStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := loadJSON[fileUser](s.usersPath)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toModel())
	}
	return users, nil
}

// ListProducts loads the full catalog file.
func (s *FileStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadJSON[models.Product](s.productsPath)
}

// FindProductByID scans the catalog linearly.
func (s *FileStore) FindProductByID(ctx context.Context, id string) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := loadJSON[models.Product](s.productsPath)
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// InsertProduct appends the product and rewrites the catalog file.
func (s *FileStore) InsertProduct(ctx context.Context, product models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := loadJSON[models.Product](s.productsPath)
	if err != nil {
		return models.Product{}, err
	}
	products = append(products, product)
	if err := saveJSON(s.productsPath, products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// InsertOrder assigns an id and hands the order back without persisting
// it: the file layout holds exactly the user list and the catalog, so in
// file mode an order lives only in the response that created it.
func (s *FileStore) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = uuid.NewString()
	return order, nil
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return out, nil
}

func saveJSON[T any](path string, list []T) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
