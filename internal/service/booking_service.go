package service

import (
	"errors"
	"fmt"
	"time"

	"elevix/internal/models"
	"elevix/internal/repository"
)

var (
	ErrServiceUnavailable = errors.New("service is not available for booking")
	ErrPlanMismatch       = errors.New("pricing plan does not belong to the service")
	ErrNoSessionsLeft     = errors.New("no sessions remaining on this booking")
)

// BookingService drives the booking lifecycle
type BookingService struct {
	bookingRepo *repository.BookingRepository
	catalogRepo *repository.CatalogRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo *repository.BookingRepository, catalogRepo *repository.CatalogRepository) *BookingService {
	return &BookingService{bookingRepo: bookingRepo, catalogRepo: catalogRepo}
}

// CreateBooking books a service under a pricing plan for a user. The plan's
// price and session count are copied onto the booking, so later catalog edits
// never change what the member agreed to.
func (s *BookingService) CreateBooking(userID, serviceID, planID int64, bookingDate time.Time, notes string) (*models.Booking, error) {
	svc, err := s.catalogRepo.GetServiceByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrServiceUnavailable
	}

	plan, err := s.catalogRepo.GetPlanByID(planID)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.ServiceID != serviceID {
		return nil, ErrPlanMismatch
	}

	booking := &models.Booking{
		UserID:            userID,
		ServiceID:         serviceID,
		PricingPlanID:     planID,
		BookingDate:       bookingDate,
		Status:            models.BookingPending,
		TotalPrice:        plan.Price,
		SessionsTotal:     plan.SessionsCount,
		SessionsRemaining: plan.SessionsCount,
		Notes:             notes,
	}

	id, err := s.bookingRepo.CreateBooking(booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id
	return booking, nil
}

// GetUserBookings returns a user's bookings, most recent first
func (s *BookingService) GetUserBookings(userID int64) ([]models.Booking, error) {
	return s.bookingRepo.GetUserBookings(userID)
}

// GetAllBookings returns every booking, most recent first
func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	return s.bookingRepo.GetAllBookings()
}

// Confirm moves a pending booking to confirmed
func (s *BookingService) Confirm(id int64) error {
	return s.bookingRepo.TransitionStatus(id, models.BookingPending, models.BookingConfirmed)
}

// Complete moves a confirmed booking to completed
func (s *BookingService) Complete(id int64) error {
	return s.bookingRepo.TransitionStatus(id, models.BookingConfirmed, models.BookingCompleted)
}

// Cancel cancels a booking from whichever non-terminal state it is in
func (s *BookingService) Cancel(id int64) error {
	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return repository.ErrInvalidTransition
	}
	return s.bookingRepo.TransitionStatus(id, booking.Status, models.BookingCancelled)
}

// ConfirmAllPending confirms every pending booking and returns the count
func (s *BookingService) ConfirmAllPending() (int64, error) {
	return s.bookingRepo.BulkTransition(models.BookingPending, models.BookingConfirmed)
}

// CompleteAllConfirmed completes every confirmed booking and returns the count
func (s *BookingService) CompleteAllConfirmed() (int64, error) {
	return s.bookingRepo.BulkTransition(models.BookingConfirmed, models.BookingCompleted)
}

// CancelAllPending cancels every pending booking and returns the count
func (s *BookingService) CancelAllPending() (int64, error) {
	return s.bookingRepo.BulkTransition(models.BookingPending, models.BookingCancelled)
}

// UseSession consumes one session of a confirmed package booking. When the
// last session is used the booking completes automatically.
func (s *BookingService) UseSession(id int64) (*models.Booking, error) {
	used, err := s.bookingRepo.DecrementSessions(id)
	if err != nil {
		return nil, err
	}
	if !used {
		return nil, ErrNoSessionsLeft
	}

	booking, err := s.bookingRepo.GetBookingByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d disappeared after session use", id)
	}

	if booking.SessionsRemaining == 0 {
		if err := s.bookingRepo.TransitionStatus(id, models.BookingConfirmed, models.BookingCompleted); err != nil {
			return nil, err
		}
		booking.Status = models.BookingCompleted
	}
	return booking, nil
}
