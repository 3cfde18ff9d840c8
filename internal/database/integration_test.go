package database

import (
	"os"
	"testing"
)

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_integration.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Run("TablesExist", func(t *testing.T) {
		tables := []string{
			"users", "sessions", "password_reset_tokens",
			"trainers", "services", "pricing_plans", "service_features",
			"bookings", "schedules", "faqs", "migrations",
		}
		for _, table := range tables {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&name)
			if err != nil {
				t.Errorf("Expected table %s to exist: %v", table, err)
			}
		}
	})

	t.Run("MigrationsIdempotent", func(t *testing.T) {
		if err := db.RunMigrations("../../migrations"); err != nil {
			t.Errorf("Expected second migration run to be a no-op: %v", err)
		}
	})

	t.Run("ExecReturningID", func(t *testing.T) {
		id, err := db.ExecReturningID(
			"INSERT INTO users (first_name, last_name, email, password_hash) VALUES (?, ?, ?, ?)",
			"Тест", "Користувач", "integration@example.com", "hash",
		)
		if err != nil {
			t.Fatalf("Failed to insert user: %v", err)
		}
		if id == 0 {
			t.Error("Expected a non-zero ID")
		}
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		_, err := db.ExecReturningID(
			"INSERT INTO users (first_name, last_name, email, password_hash) VALUES (?, ?, ?, ?)",
			"Інший", "Користувач", "integration@example.com", "hash",
		)
		if err == nil {
			t.Fatal("Expected duplicate email insert to fail")
		}
		if !db.IsUniqueViolation(err) {
			t.Errorf("Expected a unique violation, got %v", err)
		}
	})

	t.Run("TransactionCommit", func(t *testing.T) {
		tx, err := db.Begin()
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO faqs (question, answer, is_active) VALUES (?, ?, ?)",
			"Питання?", "Відповідь.", true,
		); err != nil {
			tx.Rollback()
			t.Fatalf("Failed to insert in transaction: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("Failed to commit: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM faqs WHERE question = ?", "Питання?").Scan(&count); err != nil {
			t.Fatalf("Failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 committed row, got %d", count)
		}
	})

	t.Run("TransactionRollback", func(t *testing.T) {
		tx, err := db.Begin()
		if err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO faqs (question, answer, is_active) VALUES (?, ?, ?)",
			"Відкинуте?", "Так.", true,
		); err != nil {
			tx.Rollback()
			t.Fatalf("Failed to insert in transaction: %v", err)
		}
		if err := tx.Rollback(); err != nil {
			t.Fatalf("Failed to rollback: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM faqs WHERE question = ?", "Відкинуте?").Scan(&count); err != nil {
			t.Fatalf("Failed to count: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected rolled back row to be absent, got %d", count)
		}
	})
}
