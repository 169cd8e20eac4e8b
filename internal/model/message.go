package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Content length bounds in characters, applied after trimming
// surrounding whitespace. The messages table enforces the same bounds
// with char_length, so both layers must count runes, not bytes.
const (
	MinContentLength = 10
	MaxContentLength = 300
)

// Content validation errors.
var (
	ErrContentTooShort = errors.New("message content is too short")
	ErrContentTooLong  = errors.New("message content is too long")
)

// Message represents an anonymous message sent to a receiver.
type Message struct {
	ID         string    `json:"id"`
	Content    string    `json:"content"`
	ReceiverID string    `json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ValidateContent trims content and checks the length bounds.
// Returns the trimmed content on success.
func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	length := utf8.RuneCountInString(trimmed)
	if length < MinContentLength {
		return "", ErrContentTooShort
	}
	if length > MaxContentLength {
		return "", ErrContentTooLong
	}
	return trimmed, nil
}
