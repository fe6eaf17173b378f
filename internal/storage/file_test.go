package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryamazeem12/websitelive/internal/models"
)

func testUser(name, email string) models.User {
	return models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash-of-" + name,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
		IsActive:     true,
	}
}

func TestFileStoreInsertAndFindUser(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	alice, err := store.InsertUser(ctx, testUser("Alice", "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "1", alice.ID)

	bob, err := store.InsertUser(ctx, testUser("Bob", "bob@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "2", bob.ID)

	found, err := store.FindUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, "hash-of-Alice", found.PasswordHash)

	_, err = store.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	alice, err := store.InsertUser(ctx, testUser("Alice", "alice@example.com"))
	require.NoError(t, err)
	bob, err := store.InsertUser(ctx, testUser("Bob", "bob@example.com"))
	require.NoError(t, err)

	// Simulated restart: a fresh store on the same directory must read
	// back the same set of users with all fields intact.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	users, err := reopened.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	byEmail := map[string]models.User{}
	for _, u := range users {
		byEmail[u.Email] = u
	}
	for _, want := range []models.User{alice, bob} {
		got, ok := byEmail[want.Email]
		require.True(t, ok, "user %s missing after reload", want.Email)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.PasswordHash, got.PasswordHash)
		assert.Equal(t, want.IsActive, got.IsActive)
		assert.True(t, got.CreatedAt.Equal(want.CreatedAt))
	}
}

func TestFileStoreEmptyLists(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFileStoreProducts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	watch := models.Product{
		ID:        "best_sellers_1",
		Name:      "Classic Steel Master",
		Category:  "best_sellers",
		Type:      "watch",
		Price:     35999,
		Currency:  "AED",
		InStock:   true,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err = store.InsertProduct(ctx, watch)
	require.NoError(t, err)

	found, err := store.FindProductByID(ctx, "best_sellers_1")
	require.NoError(t, err)
	assert.Equal(t, watch.Name, found.Name)
	assert.Equal(t, watch.Price, found.Price)
	assert.Equal(t, watch.Currency, found.Currency)
	assert.True(t, found.InStock)
	assert.True(t, found.CreatedAt.Equal(watch.CreatedAt))

	_, err = store.FindProductByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	// The catalog file is a pretty-printed JSON array.
	raw, err := os.ReadFile(filepath.Join(dir, "products.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {")
	assert.Contains(t, string(raw), `"id": "best_sellers_1"`)
}

func TestFileStoreInsertOrderAssignsID(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	order := models.Order{
		UserID:      "1",
		Items:       []map[string]any{{"id": "x", "quantity": 2, "price": 100}},
		TotalAmount: 200,
		Currency:    "AED",
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := store.InsertOrder(ctx, order)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.Equal(t, order.Items, created.Items)
}

func TestSeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, Seed(ctx, store))
	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	require.NoError(t, Seed(ctx, store))
	again, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3, "a non-empty catalog must not be reseeded")
}

func TestOpenFallsBackToFileStore(t *testing.T) {
	dir := t.TempDir()
	// Nothing listens on this port, so the probe fails fast and Open must
	// hand back the file backend.
	store, err := Open(context.Background(), "mongodb://127.0.0.1:1", "storefront", 200*time.Millisecond, dir)
	require.NoError(t, err)
	assert.Equal(t, KindFile, store.Kind())
}

func TestOpenWithoutURIUsesFileStore(t *testing.T) {
	store, err := Open(context.Background(), "", "", time.Second, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, KindFile, store.Kind())
}
