package handlers

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"elevix/internal/service"
)

// CatalogHandler serves the public pages: home, services, trainers and FAQ
type CatalogHandler struct {
	catalogService *service.CatalogService
	templates      *template.Template
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService, templates *template.Template) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		templates:      templates,
	}
}

func (h *CatalogHandler) render(w http.ResponseWriter, name string, data map[string]interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// Home renders the landing page with the service cards, trainer roster and FAQ
func (h *CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.GetCatalog()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load catalog", err)
		return
	}

	trainers, err := h.catalogService.GetTrainers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load trainers", err)
		return
	}

	faqs, err := h.catalogService.GetFAQs()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load FAQ", err)
		return
	}

	h.render(w, "index.tmpl", map[string]interface{}{
		"Title":    "Elevix — спортивний зал",
		"Services": services,
		"Trainers": trainers,
		"FAQs":     faqs,
		"User":     GetUserFromContext(r.Context()),
	})
}

// ShowTrainers renders the trainer roster page
func (h *CatalogHandler) ShowTrainers(w http.ResponseWriter, r *http.Request) {
	trainers, err := h.catalogService.GetTrainers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load trainers", err)
		return
	}

	h.render(w, "trainers_list.tmpl", map[string]interface{}{
		"Title":    "Тренери — Elevix",
		"Trainers": trainers,
		"User":     GetUserFromContext(r.Context()),
	})
}

// ShowTrainer renders one trainer's detail page with services and schedule
func (h *CatalogHandler) ShowTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, err := h.catalogService.GetTrainerPage(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load trainer", err)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "trainer_detail.tmpl", map[string]interface{}{
		"Title":    page.Trainer.FullName() + " — Elevix",
		"Trainer":  page.Trainer,
		"Services": page.Services,
		"Schedule": page.Schedule,
		"User":     GetUserFromContext(r.Context()),
	})
}

// ShowService renders one service card with plans and features
func (h *CatalogHandler) ShowService(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	svc, err := h.catalogService.GetService(id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load service", err)
		return
	}
	if svc == nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "service_detail.tmpl", map[string]interface{}{
		"Title":   svc.Name + " — Elevix",
		"Service": svc,
		"User":    GetUserFromContext(r.Context()),
	})
}

// TrainerCabinet renders the trainer's own cabinet: profile, services, schedule
func (h *CatalogHandler) TrainerCabinet(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	trainer, err := h.catalogService.GetTrainerByUser(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load trainer profile", err)
		return
	}
	if trainer == nil {
		// Trainer role without a linked profile falls back to the member cabinet
		http.Redirect(w, r, "/cabinet", http.StatusSeeOther)
		return
	}

	page, err := h.catalogService.GetTrainerPage(trainer.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to load trainer cabinet", err)
		return
	}

	h.render(w, "trainer_cabinet.tmpl", map[string]interface{}{
		"Title":    "Кабінет тренера — Elevix",
		"Trainer":  page.Trainer,
		"Services": page.Services,
		"Schedule": page.Schedule,
		"User":     user,
	})
}
