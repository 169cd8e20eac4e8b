package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/whisperbox/whisperbox/internal/metrics"
	"github.com/whisperbox/whisperbox/internal/model"
	"github.com/whisperbox/whisperbox/internal/repository"
)

// MessageService handles message business logic.
type MessageService struct {
	users    UserStore
	messages MessageStore
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// NewMessageService creates a new MessageService.
func NewMessageService(users UserStore, messages MessageStore, logger *slog.Logger, recorder metrics.Recorder) *MessageService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &MessageService{
		users:    users,
		messages: messages,
		logger:   logger,
		metrics:  recorder,
	}
}

// Create validates and persists an anonymous message to the given receiver.
// The sender is never authenticated; anonymity is the product.
func (s *MessageService) Create(ctx context.Context, receiverID, content string) (*model.Message, error) {
	trimmed, err := model.ValidateContent(content)
	if err != nil {
		s.metrics.IncMessageRejected("invalid_content")
		return nil, err
	}

	receiver, err := s.users.GetUserByID(ctx, receiverID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncMessageRejected("unknown_receiver")
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !receiver.IsAcceptingMessages {
		s.metrics.IncMessageRejected("not_accepting")
		return nil, ErrNotAcceptingMessages
	}

	now := time.Now().UTC()
	message := &model.Message{
		ID:         ulid.Make().String(),
		Content:    trimmed,
		ReceiverID: receiver.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	s.metrics.IncMessageCreated()
	s.logger.Info("message created",
		slog.String("message_id", message.ID),
		slog.String("receiver_id", receiver.ID),
	)

	return message, nil
}

// ListForEmail resolves the caller by session email and returns their
// messages, newest first.
func (s *MessageService) ListForEmail(ctx context.Context, email string) ([]*model.Message, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	messages, err := s.messages.ListMessagesByReceiver(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// Delete removes a message from the caller's inbox. receiverID is the
// receiver named in the request body and must exist; the delete itself is
// scoped to callerID, so a message owned by someone else reads as not found.
func (s *MessageService) Delete(ctx context.Context, receiverID, messageID, callerID string) error {
	if _, err := s.users.GetUserByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.messages.DeleteMessage(ctx, messageID, callerID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.metrics.IncMessageDeleted()
	s.logger.Info("message deleted",
		slog.String("message_id", messageID),
		slog.String("receiver_id", callerID),
	)

	return nil
}
