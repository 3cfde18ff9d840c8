package models

import "time"

// BookingStatus is the closed lifecycle enum for bookings
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known status value
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// CanTransitionTo implements the booking state machine. Transitions move only
// forward (pending→confirmed→completed); cancellation is allowed from any
// non-terminal state. Completed and cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCompleted || next == BookingCancelled
	}
	return false
}

// Label returns the Ukrainian display label for the status
func (s BookingStatus) Label() string {
	switch s {
	case BookingPending:
		return "Очікує підтвердження"
	case BookingConfirmed:
		return "Підтверджено"
	case BookingCompleted:
		return "Завершено"
	case BookingCancelled:
		return "Скасовано"
	}
	return string(s)
}

// IsTerminal reports whether the status accepts no further transitions
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// Booking is a user's reservation of a service under a specific pricing plan.
// TotalPrice and the session counters are snapshotted from the plan at creation
// time; later plan edits never alter existing bookings.
type Booking struct {
	ID                int64
	UserID            int64
	ServiceID         int64
	PricingPlanID     int64
	BookingDate       time.Time
	Status            BookingStatus
	TotalPrice        float64
	SessionsTotal     int // 0 for single-session plans
	SessionsRemaining int
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsPending reports whether the booking awaits confirmation
func (b *Booking) IsPending() bool { return b.Status == BookingPending }

// IsConfirmed reports whether the booking is confirmed
func (b *Booking) IsConfirmed() bool { return b.Status == BookingConfirmed }

// CanCancel reports whether the booking is still cancellable
func (b *Booking) CanCancel() bool { return !b.Status.IsTerminal() }
