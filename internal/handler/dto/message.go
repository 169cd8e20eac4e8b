// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/whisperbox/whisperbox/internal/model"
)

// CreateMessageRequest is the body for sending an anonymous message.
// ID is the receiver's public identifier from their share link.
type CreateMessageRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// DeleteMessageRequest is the body for deleting a received message.
type DeleteMessageRequest struct {
	ID        string `json:"id"`
	MessageID string `json:"messageId"`
}

// MessageResponse represents a message in API responses.
type MessageResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMessageResponse converts a Message model to its response shape.
// The receiver id is omitted: list responses are already scoped to the
// caller, and create responses go to an anonymous sender who already
// knows the id from the share link.
func ToMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToMessageResponses converts a slice of messages.
func ToMessageResponses(messages []*model.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m))
	}
	return out
}

// ProfileResponse is the signed-in user's own view of their account.
type ProfileResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	Name                string `json:"name"`
	AvatarURL           string `json:"avatarUrl,omitempty"`
	IsAcceptingMessages bool   `json:"isAcceptingMessages"`
	ShareLink           string `json:"shareLink"`
}

// ToProfileResponse converts a User model to its response shape.
func ToProfileResponse(u *model.User, baseURL string) ProfileResponse {
	return ProfileResponse{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		AvatarURL:           u.AvatarURL,
		IsAcceptingMessages: u.IsAcceptingMessages,
		ShareLink:           u.ShareLink(baseURL),
	}
}

// SuggestResponse carries generated questions joined with "||".
type SuggestResponse struct {
	Questions string `json:"questions"`
	Topic     string `json:"topic"`
}

// ToggleAcceptResponse reports the accept flag after a toggle.
type ToggleAcceptResponse struct {
	IsAcceptingMessages bool `json:"isAcceptingMessages"`
}
