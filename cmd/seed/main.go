package main

import (
	"flag"
	"log"

	"elevix/internal/config"
	"elevix/internal/database"
	"elevix/internal/repository"
	"elevix/internal/service"
)

func main() {
	var (
		skipCatalog  = flag.Bool("skip-catalog", false, "do not reload the service catalog")
		skipTrainers = flag.Bool("skip-trainers", false, "do not reload the trainer roster")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	seeder := service.NewSeedService(
		repository.NewCatalogRepository(db),
		repository.NewTrainerRepository(db),
		repository.NewUserRepository(db),
	)

	if !*skipCatalog {
		if err := seeder.LoadCatalog(); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		log.Println("✅ Успішно завантажено всі послуги!")
	}

	if !*skipTrainers {
		if err := seeder.LoadTrainers(cfg.TrainersJSON); err != nil {
			log.Fatalf("Failed to load trainers: %v", err)
		}
		log.Println("✅ Успішно завантажено тренерів!")
	}

	if err := seeder.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap admin account: %v", err)
	}
}
