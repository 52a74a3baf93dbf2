package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/skinai/skinai-backend/internal/core"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns increasing IDs", func(t *testing.T) {
		s := NewMemoryStore(zap.NewNop())
		first := &core.Account{Username: "a", Password: "x", CreatedAt: time.Now()}
		second := &core.Account{Username: "b", Password: "x", CreatedAt: time.Now()}
		if err := s.Create(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Create(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID != 1 || second.ID != 2 {
			t.Errorf("IDs = %d, %d; want 1, 2", first.ID, second.ID)
		}
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		s := NewMemoryStore(zap.NewNop())
		if err := s.Create(ctx, &core.Account{Username: "a"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Create(ctx, &core.Account{Username: "a"}); !errors.Is(err, core.ErrUserExists) {
			t.Errorf("err = %v, want ErrUserExists", err)
		}
	})

	t.Run("lookup round-trips the account", func(t *testing.T) {
		s := NewMemoryStore(zap.NewNop())
		in := &core.Account{Username: "a", Name: "Asha", Allergies: `["Paraben"]`}
		if err := s.Create(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out, err := s.GetByUsername(ctx, "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Name != "Asha" || out.Allergies != `["Paraben"]` {
			t.Errorf("round-trip mismatch: %+v", out)
		}
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		s := NewMemoryStore(zap.NewNop())
		if _, err := s.GetByUsername(ctx, "nobody"); !errors.Is(err, core.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("returned account is a copy", func(t *testing.T) {
		s := NewMemoryStore(zap.NewNop())
		if err := s.Create(ctx, &core.Account{Username: "a", Name: "Asha"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first, _ := s.GetByUsername(ctx, "a")
		first.Name = "changed"
		second, _ := s.GetByUsername(ctx, "a")
		if second.Name != "Asha" {
			t.Error("mutation leaked into the store")
		}
	})
}
