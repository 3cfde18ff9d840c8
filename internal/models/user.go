package models

import (
	"strings"
	"time"
)

// User roles determine post-login routing and access
const (
	RoleClient  = "client"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

// User represents a gym member account
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	MiddleName   string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	Age          int
	Gender       string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "Прізвище Ім'я По-батькові"
func (u *User) FullName() string {
	parts := []string{}
	for _, p := range []string{u.LastName, u.FirstName, u.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// ShortName returns "Прізвище І.П."
func (u *User) ShortName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	initials := string([]rune(u.FirstName)[0]) + "."
	if u.MiddleName != "" {
		initials += string([]rune(u.MiddleName)[0]) + "."
	}
	return u.LastName + " " + initials
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session represents an authenticated session
type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// PasswordResetToken is a single-use credential proving control of an email
// address. Stored durably so pending resets survive a process restart.
type PasswordResetToken struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks if the reset token has expired
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
