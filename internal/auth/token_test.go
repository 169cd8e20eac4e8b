package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/whisperbox/whisperbox/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:       "01HZXTESTUSER",
		GoogleID: "google-sub-123",
		Email:    "jane@example.com",
		Name:     "Jane Doe",
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager("test-secret", 24*time.Hour)

	token, exp, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if until := time.Until(exp); until < 23*time.Hour || until > 25*time.Hour {
		t.Errorf("expected ~24h lifetime, got %s", until)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "01HZXTESTUSER" {
		t.Errorf("unexpected user id: %s", claims.UserID)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("unexpected email: %s", claims.Email)
	}
	if claims.Subject != "google-sub-123" {
		t.Errorf("unexpected subject: %s", claims.Subject)
	}
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 24*time.Hour)
	verifier := NewTokenManager("secret-b", 24*time.Hour)

	token, _, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, _, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", 24*time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", token, err)
		}
	}
}
