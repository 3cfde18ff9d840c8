package repository

import (
	"database/sql"
	"fmt"
	"time"

	"elevix/internal/database"
	"elevix/internal/models"
)

// ErrDuplicateEmail is returned when an insert or update collides with the
// unique email constraint.
var ErrDuplicateEmail = fmt.Errorf("email already registered")

// UserRepository handles database operations for users, sessions and reset tokens
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, COALESCE(middle_name, ''), email,
	password_hash, COALESCE(phone, ''), role, COALESCE(age, 0), COALESCE(gender, ''),
	COALESCE(bio, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.MiddleName,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Role,
		&user.Age,
		&user.Gender,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new user. A unique-email collision is reported as
// ErrDuplicateEmail so callers can surface it as a field error.
func (r *UserRepository) CreateUser(firstName, lastName, email, passwordHash, phone, role string) (*models.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, phone, role)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, firstName, lastName, email, passwordHash, phone, role)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// GetUserByEmail retrieves a user by email address, nil when not found
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE email = ?"
	user, err := scanUser(r.db.QueryRow(query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID, nil when not found
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = ?"
	user, err := scanUser(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SearchUsers returns users whose email contains the query, case-insensitive,
// ordered by id. An empty query returns all users.
func (r *UserRepository) SearchUsers(emailQuery string) ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY id ASC"
	args := []interface{}{}
	if emailQuery != "" {
		query = "SELECT " + userColumns + " FROM users WHERE LOWER(email) LIKE LOWER(?) ORDER BY id ASC"
		args = append(args, "%"+emailQuery+"%")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

// UpdateUser updates a user's editable fields
func (r *UserRepository) UpdateUser(id int64, firstName, lastName, email, phone, role string) error {
	query := `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, phone = ?, role = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, firstName, lastName, email, phone, role, id); err != nil {
		if r.db.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateProfile updates the profile fields a user may edit themselves
func (r *UserRepository) UpdateProfile(id int64, firstName, lastName, middleName, phone string, age int, gender, bio string) error {
	query := `
		UPDATE users
		SET first_name = ?, last_name = ?, middle_name = ?, phone = ?, age = ?, gender = ?, bio = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, firstName, lastName, middleName, phone, age, gender, bio, id); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(id int64, passwordHash string) error {
	query := "UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, passwordHash, id); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteUser deletes a user and all associated data
func (r *UserRepository) DeleteUser(id int64) error {
	query := "DELETE FROM users WHERE id = ?"
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// CreateSession creates a new session for a user
func (r *UserRepository) CreateSession(sessionID string, userID int64, expiresAt time.Time) (*models.Session, error) {
	query := "INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)"
	if _, err := r.db.Exec(query, sessionID, userID, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &models.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// GetSession retrieves a session by ID, nil when not found
func (r *UserRepository) GetSession(sessionID string) (*models.Session, error) {
	query := "SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = ?"
	session := &models.Session{}
	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// DeleteSession removes a session
func (r *UserRepository) DeleteSession(sessionID string) error {
	query := "DELETE FROM sessions WHERE id = ?"
	if _, err := r.db.Exec(query, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteUserSessions removes every session of a user (after password change)
func (r *UserRepository) DeleteUserSessions(userID int64) error {
	query := "DELETE FROM sessions WHERE user_id = ?"
	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to delete user sessions: %w", err)
	}
	return nil
}

// DeleteExpiredSessions removes all expired sessions
func (r *UserRepository) DeleteExpiredSessions() error {
	query := "DELETE FROM sessions WHERE expires_at < ?"
	if _, err := r.db.Exec(query, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}

// CreateResetToken stores a password reset token with its expiry
func (r *UserRepository) CreateResetToken(token string, userID int64, expiresAt time.Time) error {
	query := "INSERT INTO password_reset_tokens (token, user_id, expires_at) VALUES (?, ?, ?)"
	if _, err := r.db.Exec(query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

// GetResetToken retrieves a reset token, nil when not found
func (r *UserRepository) GetResetToken(token string) (*models.PasswordResetToken, error) {
	query := "SELECT token, user_id, expires_at, created_at FROM password_reset_tokens WHERE token = ?"
	t := &models.PasswordResetToken{}
	err := r.db.QueryRow(query, token).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}
	return t, nil
}

// LatestResetRequest returns when the user last requested a reset token,
// zero time when they never have. Used for the request cooldown.
func (r *UserRepository) LatestResetRequest(userID int64) (time.Time, error) {
	query := "SELECT MAX(created_at) FROM password_reset_tokens WHERE user_id = ?"
	var last sql.NullTime
	if err := r.db.QueryRow(query, userID).Scan(&last); err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest reset request: %w", err)
	}
	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

// ConsumeResetToken deletes the token and reports whether this call removed it.
// The delete is the single-use guarantee: exactly one redeemer observes true.
func (r *UserRepository) ConsumeResetToken(token string) (bool, error) {
	query := "DELETE FROM password_reset_tokens WHERE token = ?"
	result, err := r.db.Exec(query, token)
	if err != nil {
		return false, fmt.Errorf("failed to consume reset token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read consume result: %w", err)
	}
	return affected > 0, nil
}

// DeleteExpiredResetTokens removes expired reset tokens
func (r *UserRepository) DeleteExpiredResetTokens() error {
	query := "DELETE FROM password_reset_tokens WHERE expires_at < ?"
	if _, err := r.db.Exec(query, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expired reset tokens: %w", err)
	}
	return nil
}
