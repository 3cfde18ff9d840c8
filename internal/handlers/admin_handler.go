package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"elevix/internal/models"
	"elevix/internal/repository"
	"elevix/internal/service"
)

// AdminHandler serves the admin dashboard: bookings, schedules, FAQ and
// service availability.
type AdminHandler struct {
	bookingService *service.BookingService
	catalogRepo    *repository.CatalogRepository
	scheduleRepo   *repository.ScheduleRepository
	faqRepo        *repository.FAQRepository
	middleware     *Middleware
	templates      *template.Template
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(bookingService *service.BookingService, catalogRepo *repository.CatalogRepository, scheduleRepo *repository.ScheduleRepository, faqRepo *repository.FAQRepository, middleware *Middleware, templates *template.Template) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
		catalogRepo:    catalogRepo,
		scheduleRepo:   scheduleRepo,
		faqRepo:        faqRepo,
		middleware:     middleware,
		templates:      templates,
	}
}

func (h *AdminHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// Dashboard renders the admin overview with every booking and schedule slot
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.GetAllBookings()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load bookings", err)
		return
	}

	schedule, err := h.scheduleRepo.GetAllSlots()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load schedule", err)
		return
	}

	h.render(w, "admin_dashboard.tmpl", map[string]interface{}{
		"Title":     "Адмін-панель — Elevix",
		"Bookings":  bookings,
		"Schedule":  schedule,
		"User":      GetUserFromContext(r.Context()),
		"CSRFToken": h.middleware.CSRFToken(r),
	})
}

// TransitionBooking applies one status action to a single booking
func (h *AdminHandler) TransitionBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch r.PathValue("action") {
	case "confirm":
		err = h.bookingService.Confirm(id)
	case "complete":
		err = h.bookingService.Complete(id)
	case "cancel":
		err = h.bookingService.Cancel(id)
	default:
		http.NotFound(w, r)
		return
	}

	if errors.Is(err, repository.ErrInvalidTransition) {
		respondWithError(w, http.StatusConflict, "Недопустима зміна статусу бронювання", "", nil)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Booking transition failed", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// BulkBookings applies one status action to every booking in the source state
func (h *AdminHandler) BulkBookings(w http.ResponseWriter, r *http.Request) {
	var (
		moved int64
		err   error
	)

	action := r.PathValue("action")
	switch action {
	case "confirm":
		moved, err = h.bookingService.ConfirmAllPending()
	case "complete":
		moved, err = h.bookingService.CompleteAllConfirmed()
	case "cancel":
		moved, err = h.bookingService.CancelAllPending()
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Bulk booking action failed", err)
		return
	}

	log.Printf("Bulk booking %s moved %d bookings", action, moved)

	if isAJAX(r) {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{"status": "ok", "moved": moved})
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CreateScheduleSlot adds a weekly schedule slot
func (h *AdminHandler) CreateScheduleSlot(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseInt(r.FormValue("trainer_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	serviceID, err := strconv.ParseInt(r.FormValue("service_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	dayOfWeek, err := strconv.Atoi(r.FormValue("day_of_week"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}
	maxParticipants, err := strconv.Atoi(r.FormValue("max_participants"))
	if err != nil || maxParticipants < 1 {
		maxParticipants = 1
	}

	slot := &models.Schedule{
		TrainerID:       trainerID,
		ServiceID:       serviceID,
		DayOfWeek:       dayOfWeek,
		StartTime:       r.FormValue("start_time"),
		EndTime:         r.FormValue("end_time"),
		MaxParticipants: maxParticipants,
		IsActive:        true,
	}

	if _, err := h.scheduleRepo.CreateSlot(slot); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			respondWithError(w, http.StatusConflict, "Цей час у тренера вже зайнятий", "", nil)
			return
		}
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Failed to create schedule slot", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// SetScheduleSlotActive enables or disables a weekly schedule slot
func (h *AdminHandler) SetScheduleSlotActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	active := r.FormValue("active") == "1"
	if err := h.scheduleRepo.SetSlotActive(id, active); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to update schedule slot", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// DeleteScheduleSlot removes a weekly schedule slot
func (h *AdminHandler) DeleteScheduleSlot(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.scheduleRepo.DeleteSlot(id); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to delete schedule slot", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CreateFAQ adds one FAQ entry
func (h *AdminHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	question := r.FormValue("question")
	answer := r.FormValue("answer")
	if question == "" || answer == "" {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", nil)
		return
	}

	sortOrder, err := strconv.Atoi(r.FormValue("sort_order"))
	if err != nil {
		sortOrder = 0
	}

	if _, err := h.faqRepo.CreateFAQ(question, answer, sortOrder); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to create FAQ", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// SetFAQActive toggles one FAQ entry
func (h *AdminHandler) SetFAQActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	active := r.FormValue("active") == "1"
	if err := h.faqRepo.SetFAQActive(id, active); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to update FAQ", err)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// SetServiceActive soft-enables or soft-disables a service
func (h *AdminHandler) SetServiceActive(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	active := r.FormValue("active") == "1"
	if err := h.catalogRepo.SetServiceActive(id, active); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to update service", err)
		return
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	log.Printf("Service %d %s", id, state)

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
