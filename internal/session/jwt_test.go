package session

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	token, err := GenerateToken("session-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sessionID, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessionID != "session-abc" {
		t.Errorf("expected session-abc, got %q", sessionID)
	}
}

func TestGenerateToken_EmptySessionID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if _, err := GenerateToken(""); err == nil {
		t.Fatal("expected error for empty session id")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken("session-abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
