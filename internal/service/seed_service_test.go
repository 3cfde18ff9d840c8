package service

import (
	"testing"

	"elevix/internal/models"
	"elevix/internal/repository"
	"elevix/internal/security"
)

func TestSeedServiceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := setupTestDB(t)
	catalogRepo := repository.NewCatalogRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	userRepo := repository.NewUserRepository(db)
	seed := NewSeedService(catalogRepo, trainerRepo, userRepo)

	t.Run("LoadCatalog", func(t *testing.T) {
		if err := seed.LoadCatalog(); err != nil {
			t.Fatalf("LoadCatalog failed: %v", err)
		}

		services, err := catalogRepo.GetActiveServices()
		if err != nil {
			t.Fatalf("Failed to get services: %v", err)
		}
		if len(services) != 3 {
			t.Fatalf("Expected 3 seeded services, got %d", len(services))
		}

		for _, svc := range services {
			plans, err := catalogRepo.GetServicePlans(svc.ID)
			if err != nil {
				t.Fatalf("Failed to get plans for %s: %v", svc.Name, err)
			}
			if len(plans) != 2 {
				t.Errorf("Expected 2 plans for %s, got %d", svc.Name, len(plans))
			}

			defaults := 0
			for _, p := range plans {
				if p.IsDefault {
					defaults++
				}
			}
			if defaults != 1 {
				t.Errorf("Expected exactly one default plan for %s, got %d", svc.Name, defaults)
			}

			features, err := catalogRepo.GetServiceFeatures(svc.ID)
			if err != nil {
				t.Fatalf("Failed to get features for %s: %v", svc.Name, err)
			}
			if len(features) == 0 {
				t.Errorf("Expected features for %s", svc.Name)
			}
		}

		// Reloading wipes and reinserts instead of duplicating
		if err := seed.LoadCatalog(); err != nil {
			t.Fatalf("Second LoadCatalog failed: %v", err)
		}
		services, err = catalogRepo.GetActiveServices()
		if err != nil {
			t.Fatalf("Failed to get services: %v", err)
		}
		if len(services) != 3 {
			t.Errorf("Expected reload to keep 3 services, got %d", len(services))
		}
	})

	t.Run("LoadTrainers", func(t *testing.T) {
		if err := seed.LoadTrainers("../../static/json/trainers.json"); err != nil {
			t.Fatalf("LoadTrainers failed: %v", err)
		}

		trainers, err := trainerRepo.GetAllTrainers()
		if err != nil {
			t.Fatalf("Failed to get trainers: %v", err)
		}
		if len(trainers) != 4 {
			t.Fatalf("Expected 4 seeded trainers, got %d", len(trainers))
		}
		for _, tr := range trainers {
			if !models.ValidSpecialization(tr.Specialization) {
				t.Errorf("Trainer %s has unknown specialization %q", tr.FullName(), tr.Specialization)
			}
		}
	})

	t.Run("EnsureAdmin", func(t *testing.T) {
		if err := seed.EnsureAdmin("admin@example.com", "admin-secret"); err != nil {
			t.Fatalf("EnsureAdmin failed: %v", err)
		}

		admin, err := userRepo.GetUserByEmail("admin@example.com")
		if err != nil {
			t.Fatalf("Failed to get admin: %v", err)
		}
		if admin == nil || !admin.IsAdmin() {
			t.Fatalf("Expected an admin account, got %+v", admin)
		}
		if !security.CheckPassword("admin-secret", admin.PasswordHash) {
			t.Error("Expected admin password to verify")
		}

		// Second run leaves the existing account alone
		if err := seed.EnsureAdmin("admin@example.com", "other-secret"); err != nil {
			t.Fatalf("Second EnsureAdmin failed: %v", err)
		}
		again, err := userRepo.GetUserByEmail("admin@example.com")
		if err != nil {
			t.Fatalf("Failed to get admin: %v", err)
		}
		if again.ID != admin.ID {
			t.Error("Expected EnsureAdmin to be idempotent")
		}
	})

	t.Run("EnsureAdminSkippedWhenUnset", func(t *testing.T) {
		if err := seed.EnsureAdmin("", ""); err != nil {
			t.Errorf("Expected unset admin credentials to be a no-op, got %v", err)
		}
	})
}
