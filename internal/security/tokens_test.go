package security

import (
	"testing"
	"time"
)

func TestTokenProvider_IssueAccess(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	userID, orgID := "u1", "o1"

	access, jti, exp, err := p.IssueAccess(userID, orgID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if access == "" || jti == "" {
		t.Fatal("access token or jti empty")
	}
	if exp.Before(time.Now()) {
		t.Fatal("expires at in the past")
	}
}

func TestTokenProvider_ValidateAccess(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	userID, orgID := "u1", "o1"
	access, _, _, err := p.IssueAccess(userID, orgID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	uid, oid, err := p.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if uid != userID || oid != orgID {
		t.Errorf("ValidateAccess: got userID=%q orgID=%q", uid, oid)
	}
}

func TestTokenProvider_ValidateAccessEmptyOrg(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	access, _, _, err := p.IssueAccess("u1", "")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	uid, oid, err := p.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess: %v", err)
	}
	if uid != "u1" || oid != "" {
		t.Errorf("ValidateAccess: got userID=%q orgID=%q", uid, oid)
	}
}

func TestTokenProvider_ValidateAccessInvalid(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	_, _, err = p.ValidateAccess("invalid-token")
	if err != ErrInvalidToken {
		t.Errorf("ValidateAccess invalid token: want ErrInvalidToken, got %v", err)
	}
}

func TestTokenProvider_ValidateAccessWrongIssuer(t *testing.T) {
	p, err := NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	access, _, _, err := p.IssueAccess("u1", "o1")
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	signer, _ := ParsePrivateKey(testPrivateKeyPEM)
	pub, _ := ParsePublicKey(testPublicKeyPEM)
	other := NewTokenProvider(signer, pub, "other-issuer", "test-audience", 15*time.Minute)
	_, _, err = other.ValidateAccess(access)
	if err != ErrInvalidToken {
		t.Errorf("ValidateAccess cross-issuer: want ErrInvalidToken, got %v", err)
	}
}
