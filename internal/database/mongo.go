// ================== internal/database/mongo.go ==================
package database

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/xyz-asif/todo-api/internal/pkg/logger"
	apperrors "github.com/xyz-asif/todo-api/pkg/errors"
)

const defaultDBName = "todoapp"

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Handle hands out the live database to repositories.
type Handle interface {
	Database() (*mongo.Database, error)
}

// Config represents database configuration
type Config struct {
	URI            string
	DBName         string
	ConnectTimeout time.Duration
	MaxPool        uint64
	MinPool        uint64
}

// Manager owns the process' single MongoDB client. The zero state is
// disconnected; Connect is safe to call from several goroutines.
type Manager struct {
	cfg    Config
	mu     sync.Mutex
	state  atomic.Int32
	client *mongo.Client
	db     *mongo.Database
}

func NewManager(cfg Config) *Manager {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.DBName == "" {
		cfg.DBName = dbNameFromURI(cfg.URI)
	}
	return &Manager{cfg: cfg}
}

// Connect establishes the connection once and returns the cached handle on
// every later call.
func (m *Manager) Connect(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	m.state.Store(int32(StateConnecting))

	ctx, cancel := context.WithTimeout(ctx, m.cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(m.cfg.URI)
	clientOptions.SetServerSelectionTimeout(m.cfg.ConnectTimeout)
	clientOptions.SetMaxConnIdleTime(30 * time.Second)
	if m.cfg.MaxPool > 0 {
		clientOptions.SetMaxPoolSize(m.cfg.MaxPool)
	}
	clientOptions.SetMinPoolSize(m.cfg.MinPool)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, m.fail(fmt.Errorf("%w: %w", apperrors.ErrConnection, err))
	}

	// Ping to verify the connection actually reaches a primary
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, m.fail(fmt.Errorf("%w: ping: %w", apperrors.ErrConnection, err))
	}

	m.client = client
	m.db = client.Database(m.cfg.DBName)
	m.state.Store(int32(StateConnected))

	logger.L().WithField("database", m.cfg.DBName).Info("Connected to MongoDB successfully")
	return m.db, nil
}

func (m *Manager) fail(err error) error {
	m.state.Store(int32(StateDisconnected))
	logger.L().WithError(err).Error("MongoDB connection error")
	return err
}

// Database returns the cached handle or ErrUninitialized.
func (m *Manager) Database() (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil, apperrors.ErrUninitialized
	}
	return m.db, nil
}

// Close releases the connection; it is a no-op when not connected.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	m.state.Store(int32(StateDisconnected))

	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	logger.L().Info("MongoDB connection closed")
	return nil
}

// Ping checks if the database is accessible
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return apperrors.ErrUninitialized
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}

func (m *Manager) State() State {
	return State(m.state.Load())
}

// DBName is the database the manager selects after connecting.
func (m *Manager) DBName() string {
	return m.cfg.DBName
}

func dbNameFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDBName
	}
	return cs.Database
}
