package models

import (
	"testing"
	"time"
)

func TestFullName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "all parts",
			user: User{FirstName: "Іван", LastName: "Петренко", MiddleName: "Олегович"},
			want: "Петренко Іван Олегович",
		},
		{
			name: "no middle name",
			user: User{FirstName: "Іван", LastName: "Петренко"},
			want: "Петренко Іван",
		},
		{
			name: "last name only",
			user: User{LastName: "Петренко"},
			want: "Петренко",
		},
		{
			name: "empty",
			user: User{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{
			name: "cyrillic initials",
			user: User{FirstName: "Іван", LastName: "Петренко", MiddleName: "Олегович"},
			want: "Петренко І.О.",
		},
		{
			name: "no middle name",
			user: User{FirstName: "Іван", LastName: "Петренко"},
			want: "Петренко І.",
		},
		{
			name: "no first name",
			user: User{LastName: "Петренко"},
			want: "Петренко",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.ShortName(); got != tt.want {
				t.Errorf("ShortName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	if !(&User{Role: RoleAdmin}).IsAdmin() {
		t.Error("Expected admin role to report IsAdmin")
	}
	if (&User{Role: RoleClient}).IsAdmin() || (&User{Role: RoleTrainer}).IsAdmin() {
		t.Error("Expected non-admin roles to not report IsAdmin")
	}
}

func TestSessionIsExpired(t *testing.T) {
	live := &Session{ExpiresAt: time.Now().Add(time.Hour)}
	if live.IsExpired() {
		t.Error("Expected future session to be live")
	}

	dead := &Session{ExpiresAt: time.Now().Add(-time.Hour)}
	if !dead.IsExpired() {
		t.Error("Expected past session to be expired")
	}
}

func TestResetTokenIsExpired(t *testing.T) {
	live := &PasswordResetToken{ExpiresAt: time.Now().Add(time.Hour)}
	if live.IsExpired() {
		t.Error("Expected future token to be live")
	}

	dead := &PasswordResetToken{ExpiresAt: time.Now().Add(-time.Hour)}
	if !dead.IsExpired() {
		t.Error("Expected past token to be expired")
	}
}
