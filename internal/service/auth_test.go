package service

import (
	"context"
	"testing"
	"time"

	"github.com/causewayhq/causeway/internal/domain"
)

func TestHashCompareRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	hash, err := auth.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash must not equal the plain password")
	}

	if err := auth.Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("Compare rejected the right password: %v", err)
	}
	if err := auth.Compare(hash, "wrong password"); err == nil {
		t.Fatalf("Compare accepted the wrong password")
	}
}

func TestIssueValidateRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)

	token, expiresAt, err := auth.Issue("user-1", domain.RoleOrganizer)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if time.Until(expiresAt) < 55*time.Minute {
		t.Fatalf("unexpected expiry: %v", expiresAt)
	}

	callerID, role, err := auth.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if callerID != "user-1" {
		t.Errorf("expected user-1, got %s", callerID)
	}
	if role != domain.RoleOrganizer {
		t.Errorf("expected organizer role, got %s", role)
	}
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	token, _, err := NewAuthService("secret-a", time.Hour).Issue("user-1", domain.RoleDonor)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, _, err = NewAuthService("secret-b", time.Hour).Validate(context.Background(), token)
	if err == nil {
		t.Fatalf("token signed with another secret must not validate")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	auth := NewAuthService("test-secret", -time.Minute)

	token, _, err := auth.Issue("user-1", domain.RoleDonor)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, _, err := auth.Validate(context.Background(), token); err == nil {
		t.Fatalf("expired token must not validate")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour)
	if _, _, err := auth.Validate(context.Background(), "not-a-token"); err == nil {
		t.Fatalf("garbage token must not validate")
	}
}
