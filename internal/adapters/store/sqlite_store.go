package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// SQLiteStore is a SQLite implementation of the AccountRepository
// interface.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens (or creates) the account database at dbPath.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			name TEXT,
			age INTEGER,
			gender TEXT,
			location TEXT,
			skin_tone TEXT,
			allergies TEXT,
			created_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Create inserts a new account. The unique index on username serializes
// concurrent registrations of the same name.
func (s *SQLiteStore) Create(ctx context.Context, account *core.Account) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password, name, age, gender, location, skin_tone, allergies, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, account.Username, account.Password, account.Name, account.Age, account.Gender,
		account.Location, account.SkinTone, account.Allergies, account.CreatedAt.Format(time.RFC3339))

	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return core.ErrUserExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		s.logger.Warn("Failed to read inserted account ID", zap.Error(err))
	} else {
		account.ID = id
	}
	return nil
}

// GetByUsername retrieves an account by username.
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (*core.Account, error) {
	var account core.Account
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password, name, age, gender, location, skin_tone, allergies, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&account.ID, &account.Username, &account.Password, &account.Name,
		&account.Age, &account.Gender, &account.Location, &account.SkinTone,
		&account.Allergies, &createdAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		s.logger.Warn("Failed to parse created_at timestamp",
			zap.String("username", username),
			zap.Error(err))
	} else {
		account.CreatedAt = ts
	}

	return &account, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
