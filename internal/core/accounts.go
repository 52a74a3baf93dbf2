package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the registration request payload.
type RegisterInput struct {
	Username  string
	Password  string
	Name      string
	Age       int
	Gender    string
	Location  string
	SkinTone  string
	Allergies []string
}

// AccountService manages user registration, login and profile lookup over
// an AccountRepository.
type AccountService struct {
	repo   AccountRepository
	logger *zap.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(repo AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a new account with a bcrypt password hash. Allergies
// are serialized as a JSON array string.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Account, error) {
	if in.Username == "" || in.Password == "" {
		return nil, Validationf("Username and password required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	allergies := in.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	serialized, err := json.Marshal(allergies)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize allergies: %w", err)
	}

	account := &Account{
		Username:  in.Username,
		Password:  string(hash),
		Name:      in.Name,
		Age:       in.Age,
		Gender:    in.Gender,
		Location:  in.Location,
		SkinTone:  in.SkinTone,
		Allergies: string(serialized),
		CreatedAt: time.Now().UTC(),
	}

	// The repository enforces username uniqueness; concurrent registrations
	// of the same name race on its constraint, not here.
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("username", account.Username))
	return account, nil
}

// Login verifies credentials and returns the account on success.
func (s *AccountService) Login(ctx context.Context, username, password string) (*Account, error) {
	if username == "" || password == "" {
		return nil, Validationf("Username and password required")
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// GetProfile retrieves an account by username, or ErrNotFound.
func (s *AccountService) GetProfile(ctx context.Context, username string) (*Account, error) {
	return s.repo.GetByUsername(ctx, username)
}
