package handlers

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net/http"

	"elevix/internal/models"
	"elevix/internal/security"
	"elevix/internal/service"
	"elevix/internal/validation"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService  *service.AuthService
	emailService *service.EmailService
	templates    *template.Template

	oauthProviders       map[string]OAuthProvider
	oauthRedirectBaseURL string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, emailService *service.EmailService, templates *template.Template, oauthProviders map[string]OAuthProvider, oauthRedirectBaseURL string) *AuthHandler {
	return &AuthHandler{
		authService:          authService,
		emailService:         emailService,
		templates:            templates,
		oauthProviders:       oauthProviders,
		oauthRedirectBaseURL: oauthRedirectBaseURL,
	}
}

// redirectPathForRole picks the post-login landing page by account role
func redirectPathForRole(user *models.User) string {
	switch user.Role {
	case models.RoleAdmin:
		return "/users"
	case models.RoleTrainer:
		return "/trainer/cabinet"
	}
	return "/cabinet"
}

func (h *AuthHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// redirectIfAuthenticated sends an already logged-in visitor to their landing
// page and reports whether it did so.
func (h *AuthHandler) redirectIfAuthenticated(w http.ResponseWriter, r *http.Request) bool {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return false
	}
	user, err := h.authService.ValidateSession(cookie.Value)
	if err != nil {
		return false
	}
	http.Redirect(w, r, redirectPathForRole(user), http.StatusSeeOther)
	return true
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	data := map[string]interface{}{
		"Title":          "Вхід — Elevix",
		"OAuthProviders": h.oauthProviderViews(),
	}
	if r.URL.Query().Get("registered") == "1" {
		data["Success"] = "✅ Реєстрація пройшла успішно!"
	}

	h.render(w, "login.tmpl", data)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	session, user, fieldErrs, err := h.authService.Login(email, password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Login failed", err)
		return
	}
	if fieldErrs.HasErrors() {
		h.render(w, "login.tmpl", map[string]interface{}{
			"Title":          "Вхід — Elevix",
			"Errors":         fieldErrs,
			"Email":          email,
			"OAuthProviders": h.oauthProviderViews(),
		})
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, SessionCookieName, session.ID, session.ExpiresAt))
	http.Redirect(w, r, redirectPathForRole(user), http.StatusSeeOther)
}

// ShowRegister renders the registration page
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	h.render(w, "register.tmpl", map[string]interface{}{
		"Title": "Реєстрація — Elevix",
		"Form":  &validation.RegistrationForm{},
	})
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	form := &validation.RegistrationForm{
		Name:            r.FormValue("name"),
		Surname:         r.FormValue("surname"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	user, fieldErrs, err := h.authService.Register(form)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Registration failed", err)
		return
	}
	if fieldErrs.HasErrors() {
		h.render(w, "register.tmpl", map[string]interface{}{
			"Title":  "Реєстрація — Elevix",
			"Errors": fieldErrs,
			"Form":   form,
		})
		return
	}

	go func() {
		if err := h.emailService.SendWelcomeEmail(context.Background(), user.Email, user.FullName()); err != nil {
			log.Printf("Error sending welcome email to %s: %v", user.Email, err)
		}
	}()

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			log.Printf("Error during logout: %v", err)
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, SessionCookieName))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowForgotPassword renders the reset request page
func (h *AuthHandler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.render(w, "forgot_password.tmpl", map[string]interface{}{
		"Title": "Відновлення пароля — Elevix",
	})
}

// ForgotPassword handles the reset request form submission
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	email := r.FormValue("email")

	fieldErrs, err := h.authService.RequestPasswordReset(r.Context(), email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Password reset request failed", err)
		return
	}
	if fieldErrs.HasErrors() {
		h.render(w, "forgot_password.tmpl", map[string]interface{}{
			"Title":  "Відновлення пароля — Elevix",
			"Errors": fieldErrs,
			"Email":  email,
		})
		return
	}

	h.render(w, "forgot_password.tmpl", map[string]interface{}{
		"Title":   "Відновлення пароля — Elevix",
		"Success": "📩 Лист з інструкціями надіслано на вашу пошту!",
	})
}

// ShowResetPassword renders the new-password form for a reset link
func (h *AuthHandler) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	valid, err := h.authService.LookupResetToken(token)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Reset token lookup failed", err)
		return
	}
	if !valid {
		h.renderInvalidToken(w)
		return
	}

	h.render(w, "reset_password.tmpl", map[string]interface{}{
		"Title": "Новий пароль — Elevix",
		"Token": token,
	})
}

// ResetPassword handles the new-password form submission
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	token := r.PathValue("token")
	form := &validation.NewPasswordForm{
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	fieldErrs, err := h.authService.ResetPassword(token, form)
	if errors.Is(err, service.ErrInvalidResetToken) {
		h.renderInvalidToken(w)
		return
	}
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Password reset failed", err)
		return
	}
	if fieldErrs.HasErrors() {
		h.render(w, "reset_password.tmpl", map[string]interface{}{
			"Title":  "Новий пароль — Elevix",
			"Token":  token,
			"Errors": fieldErrs,
		})
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderInvalidToken(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	h.render(w, "reset_invalid.tmpl", map[string]interface{}{
		"Title": "Недійсне посилання — Elevix",
	})
}
