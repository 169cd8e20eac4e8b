package service

import (
	"context"
	"log/slog"
	"io"

	"github.com/whisperbox/whisperbox/internal/model"
	"github.com/whisperbox/whisperbox/internal/repository"
)

// fakeStore is an in-memory UserStore + MessageStore for service tests.
type fakeStore struct {
	users    map[string]*model.User // keyed by id
	messages map[string]*model.Message
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[string]*model.User),
		messages: make(map[string]*model.Message),
	}
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetOrCreateUserByGoogleID(_ context.Context, user *model.User) (*model.User, error) {
	for _, u := range f.users {
		if u.GoogleID == user.GoogleID {
			return u, nil
		}
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeStore) ToggleAcceptingMessages(_ context.Context, id string) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, repository.ErrUserNotFound
	}
	u.IsAcceptingMessages = !u.IsAcceptingMessages
	return u.IsAcceptingMessages, nil
}

func (f *fakeStore) CreateMessage(_ context.Context, message *model.Message) error {
	f.messages[message.ID] = message
	return nil
}

func (f *fakeStore) ListMessagesByReceiver(_ context.Context, receiverID string) ([]*model.Message, error) {
	result := make([]*model.Message, 0)
	for _, m := range f.messages {
		if m.ReceiverID == receiverID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeStore) DeleteMessage(_ context.Context, id, receiverID string) error {
	m, ok := f.messages[id]
	if !ok || m.ReceiverID != receiverID {
		return repository.ErrMessageNotFound
	}
	delete(f.messages, id)
	return nil
}

// addUser registers a user with the given accept flag and returns it.
func (f *fakeStore) addUser(id, email string, accepting bool) *model.User {
	u := &model.User{
		ID:                  id,
		GoogleID:            "google-" + id,
		Email:               email,
		Name:                "Test User",
		IsAcceptingMessages: accepting,
	}
	f.users[id] = u
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
