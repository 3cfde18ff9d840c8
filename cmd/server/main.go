package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"elevix/internal/config"
	"elevix/internal/database"
	"elevix/internal/handlers"
	"elevix/internal/repository"
	"elevix/internal/security"
	"elevix/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	faqRepo := repository.NewFAQRepository(db)

	// Initialize services
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}
	if !emailService.IsEnabled() {
		log.Println("Running without outbound email: password reset links will not be delivered")
	}

	authService := service.NewAuthService(userRepo, emailService,
		cfg.SessionDuration, cfg.ResetTokenLifetime, cfg.ResetCooldown)
	catalogService := service.NewCatalogService(catalogRepo, trainerRepo, scheduleRepo, faqRepo)
	bookingService := service.NewBookingService(bookingRepo, catalogRepo)
	geoLog := service.NewGeoLogService(cfg.GeoLogPath)

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
		},
	}

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.SecretKey)
	limiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, csrf, limiter)

	authHandler := handlers.NewAuthHandler(authService, emailService, templates, oauthProviders, cfg.AppBaseURL)
	profileHandler := handlers.NewProfileHandler(authService, middleware, templates)
	catalogHandler := handlers.NewCatalogHandler(catalogService, templates)
	bookingHandler := handlers.NewBookingHandler(bookingService, catalogService, middleware, templates)
	usersHandler := handlers.NewUsersHandler(userRepo, middleware, templates)
	adminHandler := handlers.NewAdminHandler(bookingService, catalogRepo, scheduleRepo, faqRepo, middleware, templates)
	geoHandler := handlers.NewGeoHandler(geoLog)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Public routes
	mux.HandleFunc("GET /{$}", catalogHandler.Home)
	mux.HandleFunc("GET /trainers", catalogHandler.ShowTrainers)
	mux.HandleFunc("GET /trainers/{id}", catalogHandler.ShowTrainer)
	mux.HandleFunc("GET /services/{id}", catalogHandler.ShowService)
	mux.HandleFunc("POST /save_geo_data", geoHandler.SaveGeoData)

	// Auth routes
	mux.HandleFunc("GET /login", authHandler.ShowLogin)
	mux.HandleFunc("POST /login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /register", authHandler.ShowRegister)
	mux.HandleFunc("POST /register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /logout", authHandler.Logout)
	mux.HandleFunc("GET /forgot_password", authHandler.ShowForgotPassword)
	mux.HandleFunc("POST /forgot_password", middleware.RateLimit(authHandler.ForgotPassword))
	mux.HandleFunc("GET /reset_password/{token}", authHandler.ShowResetPassword)
	mux.HandleFunc("POST /reset_password/{token}", middleware.RateLimit(authHandler.ResetPassword))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Member routes
	mux.HandleFunc("GET /cabinet", middleware.RequireAuth(bookingHandler.Cabinet))
	mux.HandleFunc("GET /profile", middleware.RequireAuth(profileHandler.ShowProfile))
	mux.HandleFunc("POST /profile", middleware.RequireAuth(middleware.CSRFProtect(profileHandler.UpdateProfile)))
	mux.HandleFunc("GET /services/{id}/book", middleware.RequireAuth(bookingHandler.ShowBookingForm))
	mux.HandleFunc("POST /bookings", middleware.RequireAuth(middleware.CSRFProtect(bookingHandler.CreateBooking)))
	mux.HandleFunc("POST /bookings/{id}/cancel", middleware.RequireAuth(middleware.CSRFProtect(bookingHandler.CancelBooking)))

	// Trainer routes
	mux.HandleFunc("GET /trainer/cabinet", middleware.RequireRole("trainer", "admin")(catalogHandler.TrainerCabinet))
	mux.HandleFunc("POST /bookings/{id}/use", middleware.RequireRole("trainer", "admin")(middleware.CSRFProtect(bookingHandler.UseSession)))

	// Admin routes
	mux.HandleFunc("GET /admin", middleware.RequireAdmin(adminHandler.Dashboard))
	mux.HandleFunc("POST /admin/bookings/{id}/{action}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.TransitionBooking)))
	mux.HandleFunc("POST /admin/bookings/bulk/{action}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.BulkBookings)))
	mux.HandleFunc("POST /admin/schedules/create", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.CreateScheduleSlot)))
	mux.HandleFunc("POST /admin/schedules/{id}/active", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetScheduleSlotActive)))
	mux.HandleFunc("POST /admin/schedules/{id}/delete", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.DeleteScheduleSlot)))
	mux.HandleFunc("POST /admin/faqs/create", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.CreateFAQ)))
	mux.HandleFunc("POST /admin/faqs/{id}/active", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetFAQActive)))
	mux.HandleFunc("POST /admin/services/{id}/active", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetServiceActive)))
	mux.HandleFunc("GET /users", middleware.RequireAdmin(usersHandler.ShowUsers))
	mux.HandleFunc("POST /users", middleware.RequireAdmin(middleware.CSRFProtect(usersHandler.ManageUser)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background cleanup of expired sessions and reset tokens
	go cleanupExpired(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	patterns := []string{
		filepath.Join(templatesPath, "*.tmpl"),
		filepath.Join(templatesPath, "auth/*.tmpl"),
		filepath.Join(templatesPath, "admin/*.tmpl"),
	}

	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob pattern %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}

	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("02.01.2006")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("02.01.2006 15:04")
		},
		"formatPrice": func(p float64) string {
			return fmt.Sprintf("%.0f грн", p)
		},
		"perSession": func(price float64, sessions int) float64 {
			if sessions > 0 {
				return price / float64(sessions)
			}
			return price
		},
		"add": func(a, b int) int {
			return a + b
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}

// cleanupExpired periodically removes expired sessions and reset tokens
func cleanupExpired(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpired(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions and reset tokens cleaned up")
		}
	}
}
