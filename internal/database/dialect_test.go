package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func TestRewriteQuery(t *testing.T) {
	query := "SELECT * FROM users WHERE email = ? AND role = ?"

	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{"sqlite keeps question marks", NewSQLiteDialect(), query},
		{"mysql keeps question marks", NewMySQLDialect(), query},
		{"postgres numbers placeholders", NewPostgresDialect(), "SELECT * FROM users WHERE email = $1 AND role = $2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(query); got != tt.want {
				t.Errorf("RewriteQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriteQueryNoPlaceholders(t *testing.T) {
	query := "SELECT COUNT(*) FROM bookings"
	if got := NewPostgresDialect().RewriteQuery(query); got != query {
		t.Errorf("Expected query without placeholders unchanged, got %q", got)
	}
}

func TestSupportsLastInsertId(t *testing.T) {
	if !NewSQLiteDialect().SupportsLastInsertId() {
		t.Error("Expected SQLite to support LastInsertId")
	}
	if !NewMySQLDialect().SupportsLastInsertId() {
		t.Error("Expected MySQL to support LastInsertId")
	}
	if NewPostgresDialect().SupportsLastInsertId() {
		t.Error("Expected PostgreSQL to require RETURNING instead of LastInsertId")
	}
}

func TestMigrationsSubdir(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{NewSQLiteDialect(), "sqlite"},
		{NewPostgresDialect(), "postgres"},
		{NewMySQLDialect(), "mysql"},
	}

	for _, tt := range tests {
		if got := tt.dialect.MigrationsSubdir(); got != tt.want {
			t.Errorf("MigrationsSubdir() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		err     error
		want    bool
	}{
		{
			name:    "sqlite unique constraint",
			dialect: NewSQLiteDialect(),
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			want:    true,
		},
		{
			name:    "sqlite primary key constraint",
			dialect: NewSQLiteDialect(),
			err:     sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			want:    true,
		},
		{
			name:    "sqlite other error",
			dialect: NewSQLiteDialect(),
			err:     sqlite3.Error{Code: sqlite3.ErrBusy},
			want:    false,
		},
		{
			name:    "postgres unique violation",
			dialect: NewPostgresDialect(),
			err:     &pq.Error{Code: "23505"},
			want:    true,
		},
		{
			name:    "postgres other error",
			dialect: NewPostgresDialect(),
			err:     &pq.Error{Code: "42601"},
			want:    false,
		},
		{
			name:    "mysql duplicate entry",
			dialect: NewMySQLDialect(),
			err:     &mysql.MySQLError{Number: 1062},
			want:    true,
		},
		{
			name:    "mysql other error",
			dialect: NewMySQLDialect(),
			err:     &mysql.MySQLError{Number: 1045},
			want:    false,
		},
		{
			name:    "plain error",
			dialect: NewSQLiteDialect(),
			err:     errors.New("boom"),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
