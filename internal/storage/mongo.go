package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/maryamazeem12/websitelive/internal/models"
)

// Ensure MongoStore satisfies the Store interface at compile time.
var _ Store = (*MongoStore)(nil)

// MongoStore provides document-database persistence for users, products,
// and orders.
type MongoStore struct {
	client   *mongo.Client
	users    *mongo.Collection
	products *mongo.Collection
	orders   *mongo.Collection
}

// NewMongoStore connects and verifies the deployment answers a ping within
// timeout. A failed probe is terminal for this backend: the caller falls
// back to the file store and never retries for the rest of the process.
func NewMongoStore(ctx context.Context, uri, database string, timeout time.Duration) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	s := &MongoStore{
		client:   client,
		users:    db.Collection("users"),
		products: db.Collection("products"),
		orders:   db.Collection("orders"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	// Unique index on email closes the check-then-insert window that the
	// file backend can only document.
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

// Kind reports the backend name used by the health endpoint.
func (s *MongoStore) Kind() string { return KindMongo }

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// mongoUser is the collection document shape; the generated _id becomes
// the outward user id as hex.
type mongoUser struct {
	OID          primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
	IsActive     bool               `bson:"is_active"`
}

func (u mongoUser) toModel() models.User {
	return models.User{
		ID:           u.OID.Hex(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		IsActive:     u.IsActive,
	}
}

// FindUserByEmail looks a user up via the indexed email field.
func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	var doc mongoUser
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return doc.toModel(), nil
}

// InsertUser stores a new user document and returns it with the generated id.
func (s *MongoStore) InsertUser(ctx context.Context, user models.User) (models.User, error) {
	doc := mongoUser{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		IsActive:     user.IsActive,
	}
	res, err := s.users.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.User{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	user.ID = oid.Hex()
	return user, nil
}

// ListUsers returns every user, password hashes included; stripping is the
// handler's job before anything leaves the process.
func (s *MongoStore) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var docs []mongoUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toModel())
	}
	return users, nil
}

// ListProducts returns the full catalog.
func (s *MongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cursor, err := s.products.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

// FindProductByID looks a product up by its business key, not by _id.
func (s *MongoStore) FindProductByID(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if err := s.products.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

// InsertProduct stores a new catalog entry.
func (s *MongoStore) InsertProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if _, err := s.products.InsertOne(ctx, product); err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return product, nil
}

// InsertOrder stores the order and returns it with the generated id.
func (s *MongoStore) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	res, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return order, nil
}
