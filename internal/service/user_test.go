package service

import (
	"context"
	"errors"
	"testing"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/metrics"
)

func TestUserService_SignIn_CreatesOnce(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	recorder := metrics.NewInMemory()
	svc := NewUserService(store, discardLogger(), recorder)

	info := &auth.UserInfo{
		Subject:   "google-sub-1",
		Email:     "jane@example.com",
		Name:      "Jane Doe",
		AvatarURL: "https://example.com/a.png",
		Scopes:    []string{"openid", "email", "profile"},
	}

	first, err := svc.SignIn(ctx, info)
	if err != nil {
		t.Fatalf("sign in (first): %v", err)
	}
	if !first.IsAcceptingMessages {
		t.Error("expected new user to accept messages by default")
	}

	second, err := svc.SignIn(ctx, info)
	if err != nil {
		t.Fatalf("sign in (second): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat sign-in created a duplicate: %q vs %q", second.ID, first.ID)
	}
	if len(store.users) != 1 {
		t.Errorf("expected exactly 1 identity record, got %d", len(store.users))
	}

	snap := recorder.Snapshot()
	if snap.SignInsNewUser != 1 || snap.SignInsExistingUser != 1 {
		t.Errorf("expected 1 new + 1 existing sign-in, got %d/%d",
			snap.SignInsNewUser, snap.SignInsExistingUser)
	}
}

func TestUserService_ToggleAccepting(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addUser("u1", "jane@example.com", true)
	svc := NewUserService(store, discardLogger(), metrics.NewNoop())

	accepting, err := svc.ToggleAccepting(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("toggle (first): %v", err)
	}
	if accepting {
		t.Error("expected flag false after first toggle")
	}

	// Toggling twice restores the original value.
	accepting, err = svc.ToggleAccepting(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("toggle (second): %v", err)
	}
	if !accepting {
		t.Error("expected flag true after second toggle")
	}
}

func TestUserService_ToggleAccepting_UnknownCaller(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeStore(), discardLogger(), metrics.NewNoop())

	if _, err := svc.ToggleAccepting(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeStore(), discardLogger(), metrics.NewNoop())

	if _, err := svc.GetByID(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
