package repository

import (
	"fmt"

	"elevix/internal/database"
	"elevix/internal/models"
)

// FAQRepository handles database operations for FAQ entries
type FAQRepository struct {
	db *database.DB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *database.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

// CreateFAQ inserts a new FAQ entry
func (r *FAQRepository) CreateFAQ(question, answer string, sortOrder int) (int64, error) {
	query := "INSERT INTO faqs (question, answer, sort_order, is_active) VALUES (?, ?, ?, ?)"
	id, err := r.db.ExecReturningID(query, question, answer, sortOrder, true)
	if err != nil {
		return 0, fmt.Errorf("failed to create faq: %w", err)
	}
	return id, nil
}

// GetActiveFAQs retrieves active FAQ entries in display order
func (r *FAQRepository) GetActiveFAQs() ([]models.FAQ, error) {
	query := `
		SELECT id, question, answer, sort_order, is_active, created_at, updated_at
		FROM faqs
		WHERE is_active = ?
		ORDER BY sort_order, id
	`
	rows, err := r.db.Query(query, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, rows.Err()
}

// SetFAQActive enables or disables an FAQ entry
func (r *FAQRepository) SetFAQActive(id int64, active bool) error {
	query := "UPDATE faqs SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, active, id); err != nil {
		return fmt.Errorf("failed to update faq: %w", err)
	}
	return nil
}
