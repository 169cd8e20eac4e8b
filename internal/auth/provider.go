// Package auth provides OAuth sign-in and stateless session tokens.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Provider identifies an external sign-in provider.
type Provider string

// Supported providers. Only Google is implemented; every other variant is
// rejected explicitly rather than silently ignored.
const (
	ProviderGoogle Provider = "google"
)

// ErrProviderNotSupported is returned for any provider other than Google.
var ErrProviderNotSupported = errors.New("sign-in provider not supported")

// ParseProvider validates a provider name from a request path.
func ParseProvider(name string) (Provider, error) {
	switch Provider(name) {
	case ProviderGoogle:
		return ProviderGoogle, nil
	default:
		return "", ErrProviderNotSupported
	}
}

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// UserInfo is the subset of provider profile data the service keeps.
type UserInfo struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
	Scopes    []string
}

// OAuthManager drives the OAuth code flow for the supported providers.
type OAuthManager struct {
	googleConf  *oauth2.Config
	userInfoURL string
}

// OAuthConfig holds provider credentials.
type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	RedirectURL        string

	// UserInfoURL overrides the Google userinfo endpoint in tests.
	UserInfoURL string
	// Endpoint overrides the Google OAuth endpoints in tests.
	Endpoint *oauth2.Endpoint
}

// NewOAuthManager creates an OAuthManager.
func NewOAuthManager(cfg OAuthConfig) *OAuthManager {
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = googleUserInfoURL
	}
	endpoint := google.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}
	return &OAuthManager{
		googleConf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: userInfoURL,
	}
}

// StateToken generates a random CSRF state token for a login attempt.
func (o *OAuthManager) StateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// AuthURL returns the provider's authorization URL for the given state.
func (o *OAuthManager) AuthURL(provider Provider, state string) (string, error) {
	switch provider {
	case ProviderGoogle:
		return o.googleConf.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
	default:
		return "", ErrProviderNotSupported
	}
}

// Exchange trades an authorization code for the provider's profile data.
func (o *OAuthManager) Exchange(ctx context.Context, provider Provider, code string) (*UserInfo, error) {
	if provider != ProviderGoogle {
		return nil, ErrProviderNotSupported
	}

	token, err := o.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	info, err := o.fetchUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}
	info.Scopes = o.googleConf.Scopes

	return info, nil
}

// googleUserInfo is the Google userinfo endpoint response.
type googleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// fetchUserInfo retrieves the signed-in user's profile with the access token.
func (o *OAuthManager) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	client := o.googleConf.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user info request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("user info request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read user info response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info fetch failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse user info response: %w", err)
	}

	if info.Sub == "" {
		return nil, fmt.Errorf("empty sub in user info response")
	}

	return &UserInfo{
		Subject:   info.Sub,
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
	}, nil
}
