package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Options configures the Mongo handle.
type Options struct {
	URI                    string
	Name                   string
	ServerSelectionTimeout time.Duration
	ConnectTimeout         time.Duration
	MinPoolSize            uint64
	MaxPoolSize            uint64
}

// Mongo owns a client that is connected on first use and reused for the
// lifetime of the process. Concurrent first callers share one connect; a
// failed connect is retried by the next caller.
type Mongo struct {
	opts Options

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database

	// connect is swapped in tests.
	connect func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error)
}

func NewMongo(opts Options) *Mongo {
	return &Mongo{
		opts:    opts,
		connect: mongo.Connect,
	}
}

// NewMongoFromDatabase wraps an already connected database.
func NewMongoFromDatabase(db *mongo.Database) *Mongo {
	return &Mongo{
		client: db.Client(),
		db:     db,
	}
}

// Database returns the handle, connecting on the first call.
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	if m.opts.URI == "" {
		return nil, errors.New("missing required setting: MONGODB_URI")
	}
	if m.opts.Name == "" {
		return nil, errors.New("missing required setting: MONGODB_DB")
	}

	clientOpts := options.Client().
		ApplyURI(m.opts.URI).
		SetServerSelectionTimeout(m.opts.ServerSelectionTimeout).
		SetConnectTimeout(m.opts.ConnectTimeout).
		SetMinPoolSize(m.opts.MinPoolSize).
		SetMaxPoolSize(m.opts.MaxPoolSize)

	client, err := m.connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	m.client = client
	m.db = client.Database(m.opts.Name)
	return m.db, nil
}

// Collection is a shortcut for Database(ctx).Collection(name).
func (m *Mongo) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := m.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Ping checks the primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	db, err := m.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Close disconnects if a client was ever created.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}
