package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// MemoryStore is an in-memory implementation of the AccountRepository
// interface, useful for tests and local development.
type MemoryStore struct {
	accounts map[string]*core.Account
	nextID   int64
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewMemoryStore creates a new in-memory account store.
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]*core.Account),
		nextID:   1,
		logger:   logger,
	}
}

// Create stores a new account and assigns its ID.
func (s *MemoryStore) Create(ctx context.Context, account *core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Username]; ok {
		return core.ErrUserExists
	}

	account.ID = s.nextID
	s.nextID++

	stored := *account
	s.accounts[account.Username] = &stored
	return nil
}

// GetByUsername retrieves an account by username.
func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[username]
	if !ok {
		return nil, core.ErrNotFound
	}

	found := *account
	return &found, nil
}

// Close releases nothing for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
