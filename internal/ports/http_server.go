package ports

import (
	"context"
)

// Server defines the interface for the outward-facing HTTP API.
type Server interface {
	// Start begins serving requests without blocking
	Start() error

	// Stop gracefully shuts the server down
	Stop(ctx context.Context) error
}
