// Package mongodb contains the document store implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"contactlog/config"
	domainerrors "contactlog/internal/domain/errors"
	"contactlog/internal/domain/repository"
	"contactlog/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type dialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// errConnectionClosed is handed to callers whose attempt was abandoned by Close.
var errConnectionClosed = errors.New("MongoDB connection closed")

// attempt is one in-flight connection attempt shared by every concurrent caller of Open.
type attempt struct {
	done   chan struct{}
	gen    uint64
	client *mongo.Client
	err    error
}

// Connection owns the single client used by the contact repository.
// The client is dialled lazily on the first Open and kept until Close.
type Connection struct {
	cfg    *config.MongoConfig
	logger *slog.Logger
	dial   dialFunc

	mu      sync.Mutex
	client  *mongo.Client
	pending *attempt
	// gen is bumped by Close; an attempt from an older generation must not be cached.
	gen uint64
}

// NewConnection creates an unopened connection handle.
func NewConnection(cfg *config.MongoConfig, logger *slog.Logger) *Connection {
	return &Connection{
		cfg:    cfg,
		logger: logger,
		dial:   dialMongo,
	}
}

func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to MongoDB")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, errors.Wrap(err, "failed to ping MongoDB")
	}

	return client, nil
}

// Open returns the cached client, dialling it first if needed.
// Concurrent callers during a dial wait for the same attempt; a failed attempt is
// forgotten so that the next call dials again.
func (c *Connection) Open(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	if c.client != nil {
		client := c.client
		c.mu.Unlock()

		return client, nil
	}

	if c.cfg == nil || c.cfg.URI == "" {
		c.mu.Unlock()

		return nil, domainerrors.NewPersistenceError(repository.ErrMissingConnectionString, "set MONGO_URI")
	}

	a := c.pending
	if a == nil {
		a = &attempt{done: make(chan struct{}), gen: c.gen}
		c.pending = a
		go c.connect(a)
	}
	c.mu.Unlock()

	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, domainerrors.NewPersistenceError(ctx.Err(), "waiting for MongoDB connection")
	}

	if a.err != nil {
		return nil, domainerrors.NewPersistenceError(a.err, "MongoDB connection unavailable")
	}

	return a.client, nil
}

// connect runs detached from any caller's context so that one cancelled request
// does not abort the dial the others are waiting on.
func (c *Connection) connect(a *attempt) {
	timeout := c.cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := c.dial(ctx, c.cfg.URI)

	c.mu.Lock()
	closed := a.gen != c.gen
	if !closed {
		c.pending = nil
		if err == nil {
			c.client = client
		}
	}
	a.client, a.err = client, err
	if closed && err == nil {
		a.client, a.err = nil, errConnectionClosed
	}
	c.mu.Unlock()

	switch {
	case err != nil:
		c.logger.Error("MongoDB connection attempt failed", slog.Any("error", err))
	case closed:
		teardownCtx, cancelTeardown := context.WithTimeout(context.Background(), timeout)
		c.disconnect(teardownCtx, client)
		cancelTeardown()
	default:
		c.logger.Info("Connected to MongoDB", slog.String("database", c.cfg.Database))
	}

	close(a.done)
}

// Close disconnects the cached client and abandons any dial still in flight;
// an abandoned dial disconnects its own client when it completes. Close waits
// for that, bounded by ctx. Teardown failures are logged and swallowed.
func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	a := c.pending
	c.client = nil
	c.pending = nil
	c.gen++
	c.mu.Unlock()

	if client != nil {
		c.disconnect(ctx, client)
	}

	if a != nil {
		select {
		case <-a.done:
		case <-ctx.Done():
			c.logger.Warn("MongoDB connection attempt still running at close", slog.Any("error", ctx.Err()))
		}
	}

	return nil
}

func (c *Connection) disconnect(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		c.logger.Error("Failed to disconnect from MongoDB", slog.Any("error", err))

		return
	}

	c.logger.Info("Disconnected from MongoDB")
}

// Collection opens the connection if needed and returns the contacts collection.
func (c *Connection) Collection(ctx context.Context) (*mongo.Collection, error) {
	client, err := c.Open(ctx)
	if err != nil {
		return nil, err
	}

	return client.Database(c.cfg.Database).Collection(c.cfg.Collection), nil
}
