package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/whisperbox/whisperbox/internal/metrics"
	"github.com/whisperbox/whisperbox/internal/model"
)

func TestMessageService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		accepting bool
		receiver  string
		content   string
		wantErr   error
	}{
		{
			name:      "valid_message_accepted",
			accepting: true,
			receiver:  "recv-1",
			content:   "Hi there, how are you doing today?",
			wantErr:   nil,
		},
		{
			name:      "receiver_not_accepting",
			accepting: false,
			receiver:  "recv-1",
			content:   "Hi there, how are you doing today?",
			wantErr:   ErrNotAcceptingMessages,
		},
		{
			name:      "unknown_receiver",
			accepting: true,
			receiver:  "missing",
			content:   "Hi there, how are you doing today?",
			wantErr:   ErrUserNotFound,
		},
		{
			name:      "content_too_short",
			accepting: true,
			receiver:  "recv-1",
			content:   "short",
			wantErr:   model.ErrContentTooShort,
		},
		{
			name:      "content_too_short_even_when_not_accepting",
			accepting: false,
			receiver:  "recv-1",
			content:   "short",
			wantErr:   model.ErrContentTooShort,
		},
		{
			name:      "content_too_long",
			accepting: true,
			receiver:  "recv-1",
			content:   strings.Repeat("a", model.MaxContentLength+1),
			wantErr:   model.ErrContentTooLong,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := newFakeStore()
			store.addUser("recv-1", "recv@example.com", test.accepting)
			svc := NewMessageService(store, store, discardLogger(), metrics.NewNoop())

			message, err := svc.Create(ctx, test.receiver, test.content)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}

			if test.wantErr != nil {
				if len(store.messages) != 0 {
					t.Errorf("expected no message persisted, got %d", len(store.messages))
				}
				return
			}

			if message == nil {
				t.Fatal("expected created message")
			}
			if message.ReceiverID != "recv-1" {
				t.Errorf("unexpected receiver: %s", message.ReceiverID)
			}
			if message.Content != strings.TrimSpace(test.content) {
				t.Errorf("unexpected content: %q", message.Content)
			}
			if len(store.messages) != 1 {
				t.Errorf("expected 1 persisted message, got %d", len(store.messages))
			}
		})
	}
}

func TestMessageService_Create_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addUser("recv-1", "recv@example.com", false)
	recorder := metrics.NewInMemory()
	svc := NewMessageService(store, store, discardLogger(), recorder)

	_, _ = svc.Create(ctx, "recv-1", "Hi there, how are you doing today?")

	if got := recorder.Snapshot().MessagesNotAccepting; got != 1 {
		t.Errorf("expected 1 not_accepting rejection, got %d", got)
	}
}

func TestMessageService_ListForEmail(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addUser("recv-1", "recv@example.com", true)
	svc := NewMessageService(store, store, discardLogger(), metrics.NewNoop())

	if _, err := svc.Create(ctx, "recv-1", "Hi there, how are you doing today?"); err != nil {
		t.Fatalf("create: %v", err)
	}

	messages, err := svc.ListForEmail(ctx, "recv@example.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 {
		t.Errorf("expected 1 message, got %d", len(messages))
	}

	if _, err := svc.ListForEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMessageService_Delete(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.addUser("recv-1", "recv@example.com", true)
	store.addUser("other", "other@example.com", true)
	svc := NewMessageService(store, store, discardLogger(), metrics.NewNoop())

	message, err := svc.Create(ctx, "recv-1", "Hi there, how are you doing today?")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Another authenticated user cannot delete the receiver's message.
	if err := svc.Delete(ctx, "recv-1", message.ID, "other"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound for foreign caller, got %v", err)
	}
	if len(store.messages) != 1 {
		t.Errorf("expected message to survive foreign delete, got %d", len(store.messages))
	}

	// Unknown receiver in the request body.
	if err := svc.Delete(ctx, "missing", message.ID, "recv-1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	// Unknown message id leaves the store unchanged.
	if err := svc.Delete(ctx, "recv-1", "missing", "recv-1"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
	if len(store.messages) != 1 {
		t.Errorf("expected store unchanged, got %d messages", len(store.messages))
	}

	// Owner delete succeeds.
	if err := svc.Delete(ctx, "recv-1", message.ID, "recv-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.messages) != 0 {
		t.Errorf("expected empty store, got %d messages", len(store.messages))
	}
}
