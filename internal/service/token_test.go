package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/tasklite/task-service/internal/apperrors"
	"github.com/tasklite/task-service/internal/config"
)

func newTestTokenService(secret string, ttl time.Duration, now func() time.Time) *TokenService {
	svc := NewTokenService(&config.Config{JWTSecret: secret, TokenTTL: ttl})
	if now != nil {
		svc.now = now
	}
	return svc
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour, nil)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	username, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issued := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc := newTestTokenService("test-secret", time.Hour, func() time.Time { return issued })

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.Verify(token)
	var auth *apperrors.AuthenticationError
	if !errors.As(err, &auth) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour, nil)

	token, err := svc.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Corrupt the signature segment.
	parts := strings.Split(token, ".")
	parts[2] = "AAAA" + parts[2]
	_, err = svc.Verify(strings.Join(parts, "."))
	var auth *apperrors.AuthenticationError
	if !errors.As(err, &auth) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := newTestTokenService("key-one", time.Hour, nil)
	verifier := newTestTokenService("key-two", time.Hour, nil)

	token, err := issuer.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = verifier.Verify(token)
	var auth *apperrors.AuthenticationError
	if !errors.As(err, &auth) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := newTestTokenService("test-secret", time.Hour, nil)

	_, err := svc.Verify("not-a-token")
	var auth *apperrors.AuthenticationError
	if !errors.As(err, &auth) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}
