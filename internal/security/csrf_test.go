package security

import "testing"

func TestCSRFTokenRoundTrip(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	token, err := gen.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if !gen.ValidateToken("session-123", token) {
		t.Error("Expected token to validate for its own session")
	}
}

func TestCSRFTokenDeterministic(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")

	t1, err := gen.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	t2, err := gen.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if t1 != t2 {
		t.Error("Expected the same session to produce the same token")
	}
}

func TestCSRFTokenRejections(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")
	token, err := gen.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name      string
		sessionID string
		token     string
	}{
		{"other session", "session-456", token},
		{"garbage token", "session-123", "not-a-token"},
		{"empty token", "session-123", ""},
		{"empty session", "", token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if gen.ValidateToken(tt.sessionID, tt.token) {
				t.Error("Expected validation to fail")
			}
		})
	}
}

func TestCSRFTokenDifferentSecrets(t *testing.T) {
	a := NewCSRFGenerator("secret-a")
	b := NewCSRFGenerator("secret-b")

	token, err := a.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if b.ValidateToken("session-123", token) {
		t.Error("Expected token signed with a different secret to fail")
	}
}

func TestGenerateTokenRequiresSession(t *testing.T) {
	gen := NewCSRFGenerator("test-secret")
	if _, err := gen.GenerateToken(""); err == nil {
		t.Error("Expected an error for empty session ID")
	}
}
