package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const pgUniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of the AccountRepository
// interface.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPostgresStore connects to PostgreSQL and ensures the users table
// exists.
func NewPostgresStore(ctx context.Context, dsn string, logger *zap.Logger) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(80) NOT NULL UNIQUE,
			password VARCHAR(200) NOT NULL,
			name VARCHAR(100),
			age INT,
			gender VARCHAR(10),
			location VARCHAR(100),
			skin_tone VARCHAR(50),
			allergies VARCHAR(200),
			created_at TIMESTAMPTZ
		)
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return &PostgresStore{
		pool:   pool,
		logger: logger,
	}, nil
}

// Create inserts a new account, relying on the unique constraint for
// duplicate detection.
func (s *PostgresStore) Create(ctx context.Context, account *core.Account) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (username, password, name, age, gender, location, skin_tone, allergies, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, account.Username, account.Password, account.Name, account.Age, account.Gender,
		account.Location, account.SkinTone, account.Allergies, account.CreatedAt).Scan(&account.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return core.ErrUserExists
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// GetByUsername retrieves an account by username.
func (s *PostgresStore) GetByUsername(ctx context.Context, username string) (*core.Account, error) {
	var account core.Account

	err := s.pool.QueryRow(ctx, `
		SELECT id, username, password, name, age, gender, location, skin_tone, allergies, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&account.ID, &account.Username, &account.Password, &account.Name,
		&account.Age, &account.Gender, &account.Location, &account.SkinTone,
		&account.Allergies, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
