package repository

import (
	"fmt"

	"elevix/internal/database"
	"elevix/internal/models"
)

// ErrSlotTaken is returned when a schedule slot collides with an existing one
// for the same trainer, weekday and start time.
var ErrSlotTaken = fmt.Errorf("schedule slot already taken")

// ScheduleRepository handles database operations for weekly schedule slots
type ScheduleRepository struct {
	db *database.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *database.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// CreateSlot inserts a schedule slot. The (trainer, day_of_week, start_time)
// unique index turns collisions into ErrSlotTaken.
func (r *ScheduleRepository) CreateSlot(s *models.Schedule) (int64, error) {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return 0, fmt.Errorf("day_of_week out of range: %d", s.DayOfWeek)
	}

	query := `
		INSERT INTO schedules (trainer_id, service_id, day_of_week, start_time, end_time, max_participants, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, s.TrainerID, s.ServiceID, s.DayOfWeek,
		s.StartTime, s.EndTime, s.MaxParticipants, s.IsActive)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return 0, ErrSlotTaken
		}
		return 0, fmt.Errorf("failed to create schedule slot: %w", err)
	}
	return id, nil
}

// GetTrainerSchedule retrieves a trainer's active slots in weekly order
func (r *ScheduleRepository) GetTrainerSchedule(trainerID int64) ([]models.Schedule, error) {
	query := `
		SELECT id, trainer_id, service_id, day_of_week, start_time, end_time, max_participants, is_active
		FROM schedules
		WHERE trainer_id = ? AND is_active = ?
		ORDER BY day_of_week, start_time
	`
	return r.querySlots(query, trainerID, true)
}

// GetWeeklySchedule retrieves every active slot in weekly order
func (r *ScheduleRepository) GetWeeklySchedule() ([]models.Schedule, error) {
	query := `
		SELECT id, trainer_id, service_id, day_of_week, start_time, end_time, max_participants, is_active
		FROM schedules
		WHERE is_active = ?
		ORDER BY day_of_week, start_time
	`
	return r.querySlots(query, true)
}

// GetAllSlots retrieves every slot, inactive ones included, in weekly order
// (admin dashboard)
func (r *ScheduleRepository) GetAllSlots() ([]models.Schedule, error) {
	query := `
		SELECT id, trainer_id, service_id, day_of_week, start_time, end_time, max_participants, is_active
		FROM schedules
		ORDER BY day_of_week, start_time
	`
	return r.querySlots(query)
}

func (r *ScheduleRepository) querySlots(query string, args ...interface{}) ([]models.Schedule, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var slots []models.Schedule
	for rows.Next() {
		var s models.Schedule
		if err := rows.Scan(
			&s.ID,
			&s.TrainerID,
			&s.ServiceID,
			&s.DayOfWeek,
			&s.StartTime,
			&s.EndTime,
			&s.MaxParticipants,
			&s.IsActive,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule slot: %w", err)
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

// SetSlotActive enables or disables a schedule slot
func (r *ScheduleRepository) SetSlotActive(id int64, active bool) error {
	query := "UPDATE schedules SET is_active = ? WHERE id = ?"
	if _, err := r.db.Exec(query, active, id); err != nil {
		return fmt.Errorf("failed to update schedule slot: %w", err)
	}
	return nil
}

// DeleteSlot removes a schedule slot
func (r *ScheduleRepository) DeleteSlot(id int64) error {
	query := "DELETE FROM schedules WHERE id = ?"
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete schedule slot: %w", err)
	}
	return nil
}
