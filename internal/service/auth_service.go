package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"elevix/internal/models"
	"elevix/internal/repository"
	"elevix/internal/security"
	"elevix/internal/validation"
)

var (
	// ErrInvalidResetToken covers unknown, expired and already-consumed tokens
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionExpired    = errors.New("session expired")
)

const (
	msgDuplicateEmail = "Користувач з таким email вже існує!"
	msgUserNotFound   = "Користувач не знайдений"
	msgWrongPassword  = "Неправильний пароль"
	msgNoSuchEmail    = "Користувач з таким email не знайдений!"
)

// AuthService handles registration, login and the password-reset flow
type AuthService struct {
	userRepo        *repository.UserRepository
	emailService    *EmailService
	sessionDuration time.Duration
	tokenLifetime   time.Duration
	resetCooldown   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, emailService *EmailService, sessionDuration, tokenLifetime, resetCooldown time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		emailService:    emailService,
		sessionDuration: sessionDuration,
		tokenLifetime:   tokenLifetime,
		resetCooldown:   resetCooldown,
	}
}

// Register validates the registration form and creates the user account.
// Validation failures, including a duplicate email, come back as a field-keyed
// error map for the form to re-render; the error return is reserved for
// infrastructure failures.
func (s *AuthService) Register(form *validation.RegistrationForm) (*models.User, validation.Errors, error) {
	form.Normalize()

	errs := form.Validate()
	if errs.HasErrors() {
		return nil, errs, nil
	}

	passwordHash, err := security.HashPassword(form.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(form.Name, form.Surname, form.Email, passwordHash, form.Phone, models.RoleClient)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		errs["email"] = msgDuplicateEmail
		return nil, errs, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil, nil
}

// Login authenticates a user and creates a session. An unknown email and a
// wrong password are reported as distinct field errors, matching the original
// behaviour of the registration flow.
func (s *AuthService) Login(email, password string) (*models.Session, *models.User, validation.Errors, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	errs := validation.Errors{}
	validation.ValidateEmailShape(errs, "email", email)
	if errs.HasErrors() {
		return nil, nil, errs, nil
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		errs["email"] = msgUserNotFound
		return nil, nil, errs, nil
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		errs["password"] = msgWrongPassword
		return nil, nil, errs, nil
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, nil, err
	}

	return session, user, nil, nil
}

func (s *AuthService) createSession(userID int64) (*models.Session, error) {
	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.userRepo.CreateSession(sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ValidateSession checks a session and returns the associated user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.userRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}

// Logout invalidates a session
func (s *AuthService) Logout(sessionID string) error {
	if err := s.userRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// UpdateProfile validates and saves the profile fields a user edits themselves
func (s *AuthService) UpdateProfile(userID int64, form *validation.ProfileForm) (validation.Errors, error) {
	form.Normalize()

	errs := form.Validate()
	if errs.HasErrors() {
		return errs, nil
	}

	err := s.userRepo.UpdateProfile(userID, form.Name, form.Surname, form.MiddleName,
		form.Phone, form.AgeValue(), form.Gender, form.Bio)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return nil, nil
}

// OAuthLogin signs in (or registers) a user authenticated by an external
// identity provider. New accounts get a random password so the reset flow
// stays usable.
func (s *AuthService) OAuthLogin(email, firstName, lastName string) (*models.Session, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil, errors.New("oauth profile has no email")
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if user == nil {
		if firstName == "" {
			firstName = strings.Split(email, "@")[0]
		}
		randomHash, err := security.HashPassword(security.GenerateSessionID())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate oauth password hash: %w", err)
		}
		user, err = s.userRepo.CreateUser(firstName, lastName, email, randomHash, "", models.RoleClient)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create oauth user: %w", err)
		}
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

// RequestPasswordReset issues a reset token and emails the reset link.
// Requests are rate-limited per account to one per cooldown window; the
// cooldown is derived from the newest stored token, so it survives restarts
// and needs no per-process state.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) (validation.Errors, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	errs := validation.Errors{}
	validation.ValidateEmailShape(errs, "email", email)
	if errs.HasErrors() {
		return errs, nil
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		errs["email"] = msgNoSuchEmail
		return errs, nil
	}

	lastRequest, err := s.userRepo.LatestResetRequest(user.ID)
	if err != nil {
		return nil, err
	}
	if !lastRequest.IsZero() {
		elapsed := time.Since(lastRequest)
		if elapsed < s.resetCooldown {
			remaining := int((s.resetCooldown - elapsed).Seconds())
			errs["email"] = validation.CooldownMessage(remaining)
			return errs, nil
		}
	}

	token, err := security.GenerateResetToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tokenLifetime)
	if err := s.userRepo.CreateResetToken(token, user.ID, expiresAt); err != nil {
		return nil, err
	}

	// A failed send propagates: the caller answers with a server error
	if err := s.emailService.SendPasswordResetEmail(ctx, user.Email, user.FullName(), token); err != nil {
		return nil, fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil, nil
}

// LookupResetToken reports whether a reset token exists and has not expired
func (s *AuthService) LookupResetToken(token string) (bool, error) {
	t, err := s.userRepo.GetResetToken(token)
	if err != nil {
		return false, err
	}
	return t != nil && !t.IsExpired(), nil
}

// ResetPassword redeems a token and replaces the user's password. The token
// is consumed atomically after the write, so a reset link works exactly once;
// every session of the user is invalidated afterwards.
func (s *AuthService) ResetPassword(token string, form *validation.NewPasswordForm) (validation.Errors, error) {
	t, err := s.userRepo.GetResetToken(token)
	if err != nil {
		return nil, err
	}
	if t == nil || t.IsExpired() {
		return nil, ErrInvalidResetToken
	}

	errs := form.Validate()
	if errs.HasErrors() {
		return errs, nil
	}

	passwordHash, err := security.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(t.UserID, passwordHash); err != nil {
		return nil, err
	}

	consumed, err := s.userRepo.ConsumeResetToken(token)
	if err != nil {
		return nil, err
	}
	if !consumed {
		// A concurrent redemption won the delete
		return nil, ErrInvalidResetToken
	}

	if err := s.userRepo.DeleteUserSessions(t.UserID); err != nil {
		return nil, err
	}

	return nil, nil
}

// CleanupExpired removes expired sessions and reset tokens
func (s *AuthService) CleanupExpired() error {
	if err := s.userRepo.DeleteExpiredSessions(); err != nil {
		return err
	}
	return s.userRepo.DeleteExpiredResetTokens()
}
