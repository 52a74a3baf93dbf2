package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// MySQLStore is a MySQL implementation of the AccountRepository interface.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore connects to MySQL and ensures the users table exists.
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(80) NOT NULL UNIQUE,
			password VARCHAR(200) NOT NULL,
			name VARCHAR(100),
			age INT,
			gender VARCHAR(10),
			location VARCHAR(100),
			skin_tone VARCHAR(50),
			allergies VARCHAR(200),
			created_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Create inserts a new account, relying on the unique key for duplicate
// detection.
func (s *MySQLStore) Create(ctx context.Context, account *core.Account) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password, name, age, gender, location, skin_tone, allergies, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, account.Username, account.Password, account.Name, account.Age, account.Gender,
		account.Location, account.SkinTone, account.Allergies, account.CreatedAt)

	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
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
func (s *MySQLStore) GetByUsername(ctx context.Context, username string) (*core.Account, error) {
	var account core.Account

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password, name, age, gender, location, skin_tone, allergies, created_at
		FROM users
		WHERE username = ?
	`, username).Scan(&account.ID, &account.Username, &account.Password, &account.Name,
		&account.Age, &account.Gender, &account.Location, &account.SkinTone,
		&account.Allergies, &account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query account: %w", err)
	}

	return &account, nil
}

// Close closes the database connection.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
