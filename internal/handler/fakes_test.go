package handler

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/whisperbox/whisperbox/internal/model"
	"github.com/whisperbox/whisperbox/internal/repository"
	"github.com/whisperbox/whisperbox/internal/service"
)

// fakeStore is an in-memory store backing service instances in tests.
type fakeStore struct {
	users    map[string]*model.User
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
	var out []*model.Message
	for _, m := range f.messages {
		if m.ReceiverID == receiverID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteMessage(_ context.Context, id, receiverID string) error {
	m, ok := f.messages[id]
	if !ok || m.ReceiverID != receiverID {
		return repository.ErrMessageNotFound
	}
	delete(f.messages, id)
	return nil
}

func (f *fakeStore) addUser(id, email, name string, accepting bool) *model.User {
	now := time.Now().UTC()
	u := &model.User{
		ID:                  id,
		GoogleID:            "google-" + id,
		Email:               email,
		Name:                name,
		IsAcceptingMessages: accepting,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	f.users[id] = u
	return u
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServices(store *fakeStore) (*service.UserService, *service.MessageService) {
	logger := discardLogger()
	users := service.NewUserService(store, logger, nil)
	messages := service.NewMessageService(store, store, logger, nil)
	return users, messages
}
