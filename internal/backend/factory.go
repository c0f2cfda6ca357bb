package backend

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	applog "pocketledger/internal/log"
	"pocketledger/internal/store/memory"
	"pocketledger/internal/store/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentBackend),
	}
}

// Create implements Factory.Create
func (f *DefaultFactory) Create(ctx context.Context, config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLite(ctx, config)
	case MemoryBackend:
		return f.createMemory()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createSQLite(ctx context.Context, config Config) (*Result, error) {
	name := config.SessionID
	if name == "" {
		name = uuid.NewString()
	}

	repo, err := sqlite.Open(ctx, "ledger-"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Info("Initialized SQLite backend",
		applog.FieldBackend, SQLiteBackend.String(),
		applog.FieldSessionID, name)

	return &Result{
		Store: repo,
		Cleanup: func() error {
			f.logger.Debug("Closing SQLite store", applog.FieldSessionID, name)
			return repo.Close()
		},
	}, nil
}

func (f *DefaultFactory) createMemory() (*Result, error) {
	f.logger.Info("Initialized memory backend", applog.FieldBackend, MemoryBackend.String())

	return &Result{
		Store:   memory.New(),
		Cleanup: func() error { return nil },
	}, nil
}
