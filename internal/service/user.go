package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/whisperbox/whisperbox/internal/auth"
	"github.com/whisperbox/whisperbox/internal/metrics"
	"github.com/whisperbox/whisperbox/internal/model"
	"github.com/whisperbox/whisperbox/internal/repository"
)

// UserService handles identity business logic.
type UserService struct {
	store   UserStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, logger *slog.Logger, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		logger:  logger,
		metrics: recorder,
	}
}

// SignIn resolves a provider profile to a local identity, creating one on
// first sign-in. Repeat sign-ins from the same subject id always resolve to
// the same record.
func (s *UserService) SignIn(ctx context.Context, info *auth.UserInfo) (*model.User, error) {
	candidate := &model.User{
		ID:                  ulid.Make().String(),
		GoogleID:            info.Subject,
		Email:               info.Email,
		Name:                info.Name,
		AvatarURL:           info.AvatarURL,
		Scopes:              info.Scopes,
		IsAcceptingMessages: true,
	}

	user, err := s.store.GetOrCreateUserByGoogleID(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in user: %w", err)
	}

	status := "existing_user"
	if user.ID == candidate.ID {
		status = "new_user"
	}
	s.metrics.IncSignIn(status)
	s.logger.Info("user signed in",
		slog.String("user_id", user.ID),
		slog.String("status", status),
	)

	return user, nil
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ToggleAccepting resolves the caller by session email and flips their
// accept-messages flag, returning the new value. Each call changes state;
// callers must treat this as a toggle, not a set.
func (s *UserService) ToggleAccepting(ctx context.Context, email string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	accepting, err := s.store.ToggleAcceptingMessages(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, ErrUserNotFound
		}
		return false, fmt.Errorf("failed to toggle accept flag: %w", err)
	}

	s.metrics.IncAcceptToggled()
	s.logger.Info("accept flag toggled",
		slog.String("user_id", user.ID),
		slog.Bool("accepting", accepting),
	)

	return accepting, nil
}
