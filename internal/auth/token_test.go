package auth

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, ok := svc.Verify(token)
	if !ok {
		t.Fatal("expected issued token to verify")
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("Email = %q, want %q", claims.Email, "a@x.com")
	}
	if claims.Issuer != tokenIssuer {
		t.Fatalf("Issuer = %q, want %q", claims.Issuer, tokenIssuer)
	}
	if claims.Subject != tokenSubject {
		t.Fatalf("Subject = %q, want %q", claims.Subject, tokenSubject)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{
		"",
		"garbage",
		"a.b.c",
		"eyJhbGciOiJub25lIn0.e30.",
		strings.Repeat("x", 4096),
	} {
		if _, ok := svc.Verify(raw); ok {
			t.Fatalf("Verify(%q) = true, want false", raw)
		}
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, ok := svc.Verify(tampered); ok {
		t.Fatal("expected tampered token to fail verification")
	}
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc := NewTokenService("test-secret", time.Hour)
	if _, ok := svc.Verify(token); ok {
		t.Fatal("expected token signed with a different secret to fail")
	}
}

func TestVerifyHonorsExpiry(t *testing.T) {
	issued := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret", time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, ok := svc.Verify(token); !ok {
		t.Fatal("expected token to verify before the ttl elapses")
	}

	svc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	if _, ok := svc.Verify(token); ok {
		t.Fatal("expected token to fail after the ttl elapses")
	}
}
