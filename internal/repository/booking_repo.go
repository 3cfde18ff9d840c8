package repository

import (
	"database/sql"
	"fmt"

	"elevix/internal/database"
	"elevix/internal/models"
)

// ErrInvalidTransition is returned when a status update would skip the
// booking state machine.
var ErrInvalidTransition = fmt.Errorf("booking status transition not allowed")

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *database.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, user_id, service_id, pricing_plan_id, booking_date, status,
	total_price, COALESCE(sessions_total, 0), COALESCE(sessions_remaining, 0),
	COALESCE(notes, ''), created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.ServiceID,
		&b.PricingPlanID,
		&b.BookingDate,
		&b.Status,
		&b.TotalPrice,
		&b.SessionsTotal,
		&b.SessionsRemaining,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// CreateBooking inserts a booking with its snapshotted price and session counters
func (r *BookingRepository) CreateBooking(b *models.Booking) (int64, error) {
	if !models.ValidBookingStatus(b.Status) {
		return 0, fmt.Errorf("unknown booking status: %s", b.Status)
	}

	var total, remaining interface{}
	if b.SessionsTotal > 0 {
		total = b.SessionsTotal
		remaining = b.SessionsRemaining
	}

	query := `
		INSERT INTO bookings (user_id, service_id, pricing_plan_id, booking_date, status,
			total_price, sessions_total, sessions_remaining, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, b.UserID, b.ServiceID, b.PricingPlanID,
		b.BookingDate, b.Status, b.TotalPrice, total, remaining, b.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}
	return id, nil
}

// GetBookingByID retrieves a booking, nil when not found
func (r *BookingRepository) GetBookingByID(id int64) (*models.Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings WHERE id = ?"
	b, err := scanBooking(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// GetUserBookings retrieves a user's bookings, most recent first
func (r *BookingRepository) GetUserBookings(userID int64) ([]models.Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings WHERE user_id = ? ORDER BY booking_date DESC"
	return r.queryBookings(query, userID)
}

// GetAllBookings retrieves all bookings, most recent first
func (r *BookingRepository) GetAllBookings() ([]models.Booking, error) {
	query := "SELECT " + bookingColumns + " FROM bookings ORDER BY booking_date DESC"
	return r.queryBookings(query)
}

func (r *BookingRepository) queryBookings(query string, args ...interface{}) ([]models.Booking, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

// TransitionStatus moves a booking from one status to another. The transition
// is validated against the state machine and applied with a compare-and-set
// UPDATE, so concurrent or stale writers cannot skip states.
func (r *BookingRepository) TransitionStatus(id int64, from, to models.BookingStatus) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidTransition
	}

	query := "UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?"
	result, err := r.db.Exec(query, to, id, from)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read status update result: %w", err)
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// BulkTransition applies from→to to every booking currently in the from
// status and returns how many rows moved.
func (r *BookingRepository) BulkTransition(from, to models.BookingStatus) (int64, error) {
	if !from.CanTransitionTo(to) {
		return 0, ErrInvalidTransition
	}

	query := "UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE status = ?"
	result, err := r.db.Exec(query, to, from)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update bookings: %w", err)
	}
	return result.RowsAffected()
}

// DecrementSessions atomically uses up one session of a confirmed package
// booking. Returns false when the booking has no sessions left, is not
// confirmed, or is not a package booking.
func (r *BookingRepository) DecrementSessions(id int64) (bool, error) {
	query := `
		UPDATE bookings
		SET sessions_remaining = sessions_remaining - 1, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ? AND sessions_remaining > 0
	`
	result, err := r.db.Exec(query, id, models.BookingConfirmed)
	if err != nil {
		return false, fmt.Errorf("failed to decrement sessions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read decrement result: %w", err)
	}
	return affected > 0, nil
}
