package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"elevix/internal/models"
	"elevix/internal/repository"
	"elevix/internal/security"
)

// SeedService loads the initial catalog, trainer roster and admin account
type SeedService struct {
	catalogRepo *repository.CatalogRepository
	trainerRepo *repository.TrainerRepository
	userRepo    *repository.UserRepository
}

// NewSeedService creates a new seed service
func NewSeedService(catalogRepo *repository.CatalogRepository, trainerRepo *repository.TrainerRepository, userRepo *repository.UserRepository) *SeedService {
	return &SeedService{catalogRepo: catalogRepo, trainerRepo: trainerRepo, userRepo: userRepo}
}

type seedPlan struct {
	Name            string
	PlanType        string
	Price           float64
	SessionsCount   int
	DiscountPercent float64
	IsDefault       bool
}

type seedService struct {
	Service  models.Service
	Plans    []seedPlan
	Features []string
}

var catalogSeed = []seedService{
	{
		Service: models.Service{
			Name:        "Групове тренування з ММА, будні дні",
			Description: "Тренування з змішаних бойових мистецтв у групі",
			Duration:    1.20,
			Category:    models.CategoryGroupTraining,
			IsActive:    true,
		},
		Plans: []seedPlan{
			{Name: "Разове", PlanType: models.PlanSingle, Price: 900, IsDefault: true},
			{Name: "Пакет з 10 занять", PlanType: models.PlanPackage, Price: 8000, SessionsCount: 10, DiscountPercent: 11.11},
		},
		Features: []string{
			"Маєте перевагу у тренуванні",
			"Зможете індивідуально відпрацювати все що потрібно",
			"Обрати групу можна взалежнос і від віку та навичок",
		},
	},
	{
		Service: models.Service{
			Name:        "Персональне тренування з бокс",
			Description: "Індивідуальні тренування з боксу",
			Duration:    1.00,
			Category:    models.CategoryPersonalTraining,
			IsActive:    true,
		},
		Plans: []seedPlan{
			{Name: "Разове", PlanType: models.PlanSingle, Price: 950, IsDefault: true},
			{Name: "Пакет з 10 занять", PlanType: models.PlanPackage, Price: 8500, SessionsCount: 10},
		},
		Features: []string{
			"Маєте перевагу у тренуванні",
			"Зможете індивідуально відпрацювати все що потрібно",
		},
	},
	{
		Service: models.Service{
			Name:        "Розслаблюючі масажі",
			Description: "Професійний розслаблюючий масаж",
			Duration:    1.50,
			Category:    models.CategoryMassage,
			IsActive:    true,
		},
		Plans: []seedPlan{
			{Name: "Разове", PlanType: models.PlanSingle, Price: 750, IsDefault: true},
			{Name: "Пакет з 9 сеансів", PlanType: models.PlanPackage, Price: 7250, SessionsCount: 9},
		},
		Features: []string{
			"Розслаблені чани",
			"Відновлювальні масажі",
		},
	},
}

// LoadCatalog wipes the catalog tables and reloads the service cards
func (s *SeedService) LoadCatalog() error {
	if err := s.catalogRepo.WipeCatalog(); err != nil {
		return err
	}

	for _, seed := range catalogSeed {
		svc := seed.Service
		serviceID, err := s.catalogRepo.CreateService(&svc)
		if err != nil {
			return fmt.Errorf("failed to seed service %q: %w", svc.Name, err)
		}

		for _, p := range seed.Plans {
			plan := &models.PricingPlan{
				ServiceID:       serviceID,
				Name:            p.Name,
				PlanType:        p.PlanType,
				Price:           p.Price,
				SessionsCount:   p.SessionsCount,
				DiscountPercent: p.DiscountPercent,
				IsDefault:       p.IsDefault,
			}
			if _, err := s.catalogRepo.CreatePlan(plan); err != nil {
				return fmt.Errorf("failed to seed plan %q: %w", p.Name, err)
			}
		}

		for i, text := range seed.Features {
			feature := &models.ServiceFeature{
				ServiceID:   serviceID,
				FeatureText: text,
				SortOrder:   i + 1,
			}
			if _, err := s.catalogRepo.CreateFeature(feature); err != nil {
				return fmt.Errorf("failed to seed feature: %w", err)
			}
		}

		log.Printf("Seeded service: %s", svc.Name)
	}

	return nil
}

type trainerSeed struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	MiddleName     string `json:"middle_name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	Experience     int    `json:"experience"`
	Specialization string `json:"specialization"`
	Description    string `json:"description"`
	Graduate       string `json:"graduate"`
	WorkExperience string `json:"work_experience"`
}

// LoadTrainers wipes the trainer roster and reloads it from a JSON file
func (s *SeedService) LoadTrainers(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read trainers file: %w", err)
	}

	var seeds []trainerSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse trainers file: %w", err)
	}

	if err := s.trainerRepo.DeleteAllTrainers(); err != nil {
		return err
	}

	for _, t := range seeds {
		trainer := &models.Trainer{
			FirstName:      t.FirstName,
			LastName:       t.LastName,
			MiddleName:     t.MiddleName,
			Age:            t.Age,
			Gender:         t.Gender,
			Experience:     t.Experience,
			Specialization: t.Specialization,
			Description:    t.Description,
			Graduate:       t.Graduate,
			WorkExperience: t.WorkExperience,
		}
		if _, err := s.trainerRepo.CreateTrainer(trainer); err != nil {
			return fmt.Errorf("failed to seed trainer %s %s: %w", t.FirstName, t.LastName, err)
		}
		log.Printf("Seeded trainer: %s", trainer.FullName())
	}

	return nil
}

// EnsureAdmin creates the bootstrap admin account if the email is free.
// Both values come from configuration; without them the step is skipped.
func (s *SeedService) EnsureAdmin(email, password string) error {
	if email == "" || password == "" {
		log.Println("Skipping admin bootstrap: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Printf("Admin account already exists: %s", email)
		return nil
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = s.userRepo.CreateUser("Admin", "Elevix", email, passwordHash, "", models.RoleAdmin)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Printf("Created admin account: %s", email)
	return nil
}
