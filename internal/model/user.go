// Package model defines domain entities for the application.
package model

import (
	"strings"
	"time"
)

// User represents an identity record created at first Google sign-in.
type User struct {
	ID                  string    `json:"id"`
	GoogleID            string    `json:"-"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	Scopes              []string  `json:"-"`
	IsAcceptingMessages bool      `json:"is_accepting_messages"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ShareLink builds the public link anonymous senders use to reach this user.
// Format: <base-url>/user/<display-name-with-spaces-as-dashes>/<id>
func (u *User) ShareLink(baseURL string) string {
	slug := strings.Join(strings.Fields(u.Name), "-")
	if slug == "" {
		slug = "user"
	}
	return strings.TrimSuffix(baseURL, "/") + "/user/" + slug + "/" + u.ID
}
