package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"elevix/internal/models"
	"elevix/internal/service"
	"elevix/internal/validation"
)

// ProfileHandler serves the self-service profile page
type ProfileHandler struct {
	authService *service.AuthService
	middleware  *Middleware
	templates   *template.Template
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(authService *service.AuthService, middleware *Middleware, templates *template.Template) *ProfileHandler {
	return &ProfileHandler{
		authService: authService,
		middleware:  middleware,
		templates:   templates,
	}
}

func (h *ProfileHandler) render(w http.ResponseWriter, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, "profile.tmpl", data); err != nil {
		log.Printf("Error rendering profile.tmpl: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

func profileFormFromUser(user *models.User) *validation.ProfileForm {
	age := ""
	if user.Age > 0 {
		age = strconv.Itoa(user.Age)
	}
	return &validation.ProfileForm{
		Name:       user.FirstName,
		Surname:    user.LastName,
		MiddleName: user.MiddleName,
		Phone:      user.Phone,
		Age:        age,
		Gender:     user.Gender,
		Bio:        user.Bio,
	}
}

// ShowProfile renders the profile edit form prefilled with the current values
func (h *ProfileHandler) ShowProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	data := map[string]interface{}{
		"Title":     "Мій профіль — Elevix",
		"User":      user,
		"Form":      profileFormFromUser(user),
		"CSRFToken": h.middleware.CSRFToken(r),
	}
	if r.URL.Query().Get("saved") == "1" {
		data["Success"] = "✅ Профіль оновлено!"
	}

	h.render(w, data)
}

// UpdateProfile handles the profile form submission
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	form := &validation.ProfileForm{
		Name:       r.FormValue("name"),
		Surname:    r.FormValue("surname"),
		MiddleName: r.FormValue("middle_name"),
		Phone:      r.FormValue("phone"),
		Age:        r.FormValue("age"),
		Gender:     r.FormValue("gender"),
		Bio:        r.FormValue("bio"),
	}

	fieldErrs, err := h.authService.UpdateProfile(user.ID, form)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Profile update failed", err)
		return
	}
	if fieldErrs.HasErrors() {
		h.render(w, map[string]interface{}{
			"Title":     "Мій профіль — Elevix",
			"User":      user,
			"Form":      form,
			"Errors":    fieldErrs,
			"CSRFToken": h.middleware.CSRFToken(r),
		})
		return
	}

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}
