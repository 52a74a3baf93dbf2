package core

import (
	"context"
)

// SkinTypeModel defines the interface for the pre-trained skin type
// classifier.
type SkinTypeModel interface {
	// PredictClass runs the classifier on a single encoded feature vector
	// and returns the predicted class code
	PredictClass(features []float64) (int, error)
}

// RoutineModel defines the interface for the pre-trained multi-label
// routine model.
type RoutineModel interface {
	// FeatureColumns returns the one-hot column list fixed at training time,
	// or nil when the loaded artifact did not carry one
	FeatureColumns() []string

	// PredictSlots runs the model on a single aligned row and returns one
	// binary output per routine slot, in RoutineSlots order
	PredictSlots(row []float64) ([]int, error)
}

// AccountRepository defines the interface for persisting user accounts.
type AccountRepository interface {
	// Create stores a new account and assigns its ID. Returns ErrUserExists
	// when the username is already taken.
	Create(ctx context.Context, account *Account) error

	// GetByUsername retrieves an account, or ErrNotFound
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// Close releases the underlying store resources
	Close() error
}
