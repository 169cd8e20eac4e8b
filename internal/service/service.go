// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"

	"github.com/whisperbox/whisperbox/internal/model"
)

// Service errors.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotAcceptingMessages = errors.New("user is not accepting messages")
)

// UserStore is the identity persistence surface the services depend on.
// *repository.Repository satisfies it; tests substitute fakes.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetOrCreateUserByGoogleID(ctx context.Context, user *model.User) (*model.User, error)
	ToggleAcceptingMessages(ctx context.Context, id string) (bool, error)
}

// MessageStore is the message persistence surface the services depend on.
type MessageStore interface {
	CreateMessage(ctx context.Context, message *model.Message) error
	ListMessagesByReceiver(ctx context.Context, receiverID string) ([]*model.Message, error)
	DeleteMessage(ctx context.Context, id, receiverID string) error
}
