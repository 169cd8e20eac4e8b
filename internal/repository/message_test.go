package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/whisperbox/whisperbox/internal/testutil"
)

func TestRepository_CreateAndListMessages(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	first := testutil.NewTestMessage(t, user.ID)
	first.CreatedAt = time.Now().UTC().Add(-time.Minute)
	first.UpdatedAt = first.CreatedAt
	second := testutil.NewTestMessage(t, user.ID)
	second.Content = "Another message with enough content to pass validation."

	if err := repo.CreateMessage(ctx, first); err != nil {
		t.Fatalf("create first message: %v", err)
	}
	if err := repo.CreateMessage(ctx, second); err != nil {
		t.Fatalf("create second message: %v", err)
	}

	messages, err := repo.ListMessagesByReceiver(ctx, user.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	// Newest first.
	if messages[0].ID != second.ID {
		t.Errorf("expected newest message first, got %q", messages[0].ID)
	}
	if messages[1].ID != first.ID {
		t.Errorf("expected oldest message last, got %q", messages[1].ID)
	}
}

func TestRepository_ListMessages_Empty(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	messages, err := repo.ListMessagesByReceiver(ctx, user.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected no messages, got %d", len(messages))
	}
}

func TestRepository_DeleteMessage(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	message := testutil.NewTestMessage(t, user.ID)
	if err := repo.CreateMessage(ctx, message); err != nil {
		t.Fatalf("create message: %v", err)
	}

	if err := repo.DeleteMessage(ctx, message.ID, user.ID); err != nil {
		t.Fatalf("delete message: %v", err)
	}

	messages, err := repo.ListMessagesByReceiver(ctx, user.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected message to be gone, got %d", len(messages))
	}
}

func TestRepository_DeleteMessage_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	user := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	err := repo.DeleteMessage(ctx, "nonexistent", user.ID)
	if !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestRepository_DeleteMessage_WrongReceiver(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t, ctx)

	owner := testutil.NewTestUser(t)
	other := testutil.NewTestUser(t)
	if err := repo.CreateUser(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := repo.CreateUser(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	message := testutil.NewTestMessage(t, owner.ID)
	if err := repo.CreateMessage(ctx, message); err != nil {
		t.Fatalf("create message: %v", err)
	}

	// Deleting someone else's message reads as not found and leaves it intact.
	if err := repo.DeleteMessage(ctx, message.ID, other.ID); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}

	messages, err := repo.ListMessagesByReceiver(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 1 {
		t.Errorf("expected message to remain, got %d", len(messages))
	}
}
