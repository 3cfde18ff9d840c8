package repository

import (
	"database/sql"
	"fmt"

	"elevix/internal/database"
	"elevix/internal/models"
)

// TrainerRepository handles database operations for trainers
type TrainerRepository struct {
	db *database.DB
}

// NewTrainerRepository creates a new trainer repository
func NewTrainerRepository(db *database.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

const trainerColumns = `id, COALESCE(user_id, 0), first_name, last_name, COALESCE(middle_name, ''),
	age, gender, experience, specialization, COALESCE(description, ''),
	COALESCE(graduate, ''), COALESCE(work_experience, ''), created_at, updated_at`

func scanTrainer(row interface{ Scan(...interface{}) error }) (*models.Trainer, error) {
	t := &models.Trainer{}
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.FirstName,
		&t.LastName,
		&t.MiddleName,
		&t.Age,
		&t.Gender,
		&t.Experience,
		&t.Specialization,
		&t.Description,
		&t.Graduate,
		&t.WorkExperience,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTrainer inserts a new trainer profile
func (r *TrainerRepository) CreateTrainer(t *models.Trainer) (int64, error) {
	if !models.ValidSpecialization(t.Specialization) {
		return 0, fmt.Errorf("unknown specialization: %s", t.Specialization)
	}

	var userID interface{}
	if t.UserID != 0 {
		userID = t.UserID
	}

	query := `
		INSERT INTO trainers (user_id, first_name, last_name, middle_name, age, gender,
			experience, specialization, description, graduate, work_experience)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, t.FirstName, t.LastName, t.MiddleName,
		t.Age, t.Gender, t.Experience, t.Specialization, t.Description, t.Graduate, t.WorkExperience)
	if err != nil {
		return 0, fmt.Errorf("failed to create trainer: %w", err)
	}
	return id, nil
}

// GetTrainerByID retrieves a trainer by ID, nil when not found
func (r *TrainerRepository) GetTrainerByID(id int64) (*models.Trainer, error) {
	query := "SELECT " + trainerColumns + " FROM trainers WHERE id = ?"
	t, err := scanTrainer(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trainer: %w", err)
	}
	return t, nil
}

// GetTrainerByUserID retrieves the trainer profile linked to a user account
func (r *TrainerRepository) GetTrainerByUserID(userID int64) (*models.Trainer, error) {
	query := "SELECT " + trainerColumns + " FROM trainers WHERE user_id = ?"
	t, err := scanTrainer(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trainer by user: %w", err)
	}
	return t, nil
}

// GetAllTrainers retrieves all trainers, newest first
func (r *TrainerRepository) GetAllTrainers() ([]models.Trainer, error) {
	query := "SELECT " + trainerColumns + " FROM trainers ORDER BY created_at DESC"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trainers: %w", err)
	}
	defer rows.Close()

	var trainers []models.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainer: %w", err)
		}
		trainers = append(trainers, *t)
	}

	return trainers, rows.Err()
}

// DeleteAllTrainers wipes the trainers table (seed command)
func (r *TrainerRepository) DeleteAllTrainers() error {
	if _, err := r.db.Exec("DELETE FROM trainers"); err != nil {
		return fmt.Errorf("failed to delete trainers: %w", err)
	}
	return nil
}
