package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"elevix/internal/models"
	"elevix/internal/repository"
)

// UsersHandler serves the admin user-management page
type UsersHandler struct {
	userRepo   *repository.UserRepository
	middleware *Middleware
	templates  *template.Template
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(userRepo *repository.UserRepository, middleware *Middleware, templates *template.Template) *UsersHandler {
	return &UsersHandler{
		userRepo:   userRepo,
		middleware: middleware,
		templates:  templates,
	}
}

// ShowUsers renders the user list, optionally filtered by email substring
func (h *UsersHandler) ShowUsers(w http.ResponseWriter, r *http.Request) {
	emailQuery := strings.TrimSpace(r.URL.Query().Get("email"))

	users, err := h.userRepo.SearchUsers(emailQuery)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load users", err)
		return
	}

	data := map[string]interface{}{
		"Title":      "Користувачі — Elevix",
		"Users":      users,
		"EmailQuery": emailQuery,
		"User":       GetUserFromContext(r.Context()),
		"CSRFToken":  h.middleware.CSRFToken(r),
	}

	if err := h.templates.ExecuteTemplate(w, "users.tmpl", data); err != nil {
		log.Printf("Error rendering users template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// ManageUser applies an update or delete action to one user account.
// AJAX callers get a bare "OK" body; form posts are redirected back to
// the list.
func (h *UsersHandler) ManageUser(w http.ResponseWriter, r *http.Request) {
	admin := GetUserFromContext(r.Context())

	userID, err := strconv.ParseInt(r.FormValue("user_id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	action := r.FormValue("action")
	switch action {
	case "update":
		err = h.updateUser(r, userID)
	case "delete":
		if userID == admin.ID {
			respondWithError(w, http.StatusBadRequest, "Неможливо видалити власний акаунт", "", nil)
			return
		}
		err = h.userRepo.DeleteUser(userID)
	default:
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Unknown user action: "+action, nil)
		return
	}

	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "User management action failed", err)
		return
	}

	log.Printf("Admin %d applied %s to user %d", admin.ID, action, userID)

	if isAJAX(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("OK"))
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

func (h *UsersHandler) updateUser(r *http.Request, userID int64) error {
	role := r.FormValue("role")
	if role == "" {
		role = models.RoleClient
	}

	return h.userRepo.UpdateUser(
		userID,
		r.FormValue("first_name"),
		r.FormValue("last_name"),
		strings.ToLower(strings.TrimSpace(r.FormValue("email"))),
		r.FormValue("phone"),
		role,
	)
}
