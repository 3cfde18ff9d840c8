package security

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("Expected argon2id PHC format, got %q", hash)
	}
	if !CheckPassword("secret1", hash) {
		t.Error("Expected correct password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Error("Expected wrong password to fail")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if h1 == h2 {
		t.Error("Expected different hashes for the same password")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPassword("secret1", tt.encoded) {
				t.Errorf("Expected malformed hash %q to fail verification", tt.encoded)
			}
		})
	}
}

func TestCheckPasswordTamperedHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	// Flip a character in the key part
	tampered := hash[:len(hash)-1]
	if strings.HasSuffix(hash, "A") {
		tampered += "B"
	} else {
		tampered += "A"
	}

	if CheckPassword("secret1", tampered) {
		t.Error("Expected tampered hash to fail verification")
	}
}

func TestGenerateResetToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		token, err := GenerateResetToken()
		if err != nil {
			t.Fatalf("GenerateResetToken failed: %v", err)
		}
		if token == "" {
			t.Fatal("Expected non-empty token")
		}
		if strings.ContainsAny(token, "+/=") {
			t.Errorf("Expected URL-safe token, got %q", token)
		}
		if seen[token] {
			t.Errorf("Expected unique tokens, got duplicate %q", token)
		}
		seen[token] = true
	}
}
