package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"elevix/internal/repository"
	"elevix/internal/service"
)

// BookingHandler serves the member cabinet and the booking lifecycle
type BookingHandler struct {
	bookingService *service.BookingService
	catalogService *service.CatalogService
	middleware     *Middleware
	templates      *template.Template
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService *service.BookingService, catalogService *service.CatalogService, middleware *Middleware, templates *template.Template) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		catalogService: catalogService,
		middleware:     middleware,
		templates:      templates,
	}
}

func (h *BookingHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// Cabinet renders the member cabinet with the user's bookings
func (h *BookingHandler) Cabinet(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	bookings, err := h.bookingService.GetUserBookings(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load bookings", err)
		return
	}

	h.render(w, "cabinet.tmpl", map[string]interface{}{
		"Title":     "Особистий кабінет — Elevix",
		"User":      user,
		"Bookings":  bookings,
		"CSRFToken": h.middleware.CSRFToken(r),
	})
}

// ShowBookingForm renders the booking form for a service
func (h *BookingHandler) ShowBookingForm(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	svc, err := h.catalogService.GetService(serviceID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load service", err)
		return
	}
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "booking_form.tmpl", map[string]interface{}{
		"Title":     "Бронювання — Elevix",
		"Service":   svc,
		"User":      GetUserFromContext(r.Context()),
		"CSRFToken": h.middleware.CSRFToken(r),
	})
}

// CreateBooking handles the booking form submission
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	serviceID, err := strconv.ParseInt(r.FormValue("service_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	planID, err := strconv.ParseInt(r.FormValue("plan_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	bookingDate, err := parseBookingDate(r.FormValue("booking_date"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	notes := r.FormValue("notes")

	_, err = h.bookingService.CreateBooking(user.ID, serviceID, planID, bookingDate, notes)
	if errors.Is(err, service.ErrServiceUnavailable) || errors.Is(err, service.ErrPlanMismatch) {
		respondWithError(w, http.StatusBadRequest, "Послуга недоступна для бронювання", "", err)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to create booking", err)
		return
	}

	http.Redirect(w, r, "/cabinet", http.StatusSeeOther)
}

// CancelBooking lets a member cancel their own booking
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	booking, err := h.bookingService.GetUserBookings(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load bookings", err)
		return
	}

	owned := false
	for _, b := range booking {
		if b.ID == id {
			owned = true
			break
		}
	}
	if !owned && !user.IsAdmin() {
		respondWithError(w, http.StatusForbidden, ErrForbidden, "", nil)
		return
	}

	if err := h.bookingService.Cancel(id); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			respondWithError(w, http.StatusConflict, "Бронювання вже завершене або скасоване", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to cancel booking", err)
		return
	}

	http.Redirect(w, r, "/cabinet", http.StatusSeeOther)
}

// UseSession consumes one session of a confirmed package booking
func (h *BookingHandler) UseSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	booking, err := h.bookingService.UseSession(id)
	if errors.Is(err, service.ErrNoSessionsLeft) {
		respondWithError(w, http.StatusConflict, "Заняття в пакеті вичерпано", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to use session", err)
		return
	}

	if isAJAX(r) {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"status":             "ok",
			"sessions_remaining": booking.SessionsRemaining,
			"booking_status":     string(booking.Status),
		})
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func parseBookingDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid booking date: " + value)
}
