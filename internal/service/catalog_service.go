package service

import (
	"fmt"

	"elevix/internal/models"
	"elevix/internal/repository"
)

// CatalogService assembles services with their plans and features, plus the
// trainer, schedule and FAQ data the public pages render.
type CatalogService struct {
	catalogRepo  *repository.CatalogRepository
	trainerRepo  *repository.TrainerRepository
	scheduleRepo *repository.ScheduleRepository
	faqRepo      *repository.FAQRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo *repository.CatalogRepository, trainerRepo *repository.TrainerRepository, scheduleRepo *repository.ScheduleRepository, faqRepo *repository.FAQRepository) *CatalogService {
	return &CatalogService{
		catalogRepo:  catalogRepo,
		trainerRepo:  trainerRepo,
		scheduleRepo: scheduleRepo,
		faqRepo:      faqRepo,
	}
}

// GetCatalog returns all active services with plans and features loaded
func (s *CatalogService) GetCatalog() ([]models.Service, error) {
	services, err := s.catalogRepo.GetActiveServices()
	if err != nil {
		return nil, err
	}

	for i := range services {
		if err := s.loadRelations(&services[i]); err != nil {
			return nil, err
		}
	}
	return services, nil
}

// GetService returns one active service with plans and features loaded,
// nil when missing or disabled.
func (s *CatalogService) GetService(id int64) (*models.Service, error) {
	svc, err := s.catalogRepo.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, nil
	}
	if err := s.loadRelations(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) loadRelations(svc *models.Service) error {
	plans, err := s.catalogRepo.GetServicePlans(svc.ID)
	if err != nil {
		return fmt.Errorf("failed to load plans for service %d: %w", svc.ID, err)
	}
	features, err := s.catalogRepo.GetServiceFeatures(svc.ID)
	if err != nil {
		return fmt.Errorf("failed to load features for service %d: %w", svc.ID, err)
	}
	svc.Plans = plans
	svc.Features = features
	return nil
}

// GetTrainers returns all trainer profiles
func (s *CatalogService) GetTrainers() ([]models.Trainer, error) {
	return s.trainerRepo.GetAllTrainers()
}

// TrainerPage bundles everything the trainer detail page renders
type TrainerPage struct {
	Trainer  *models.Trainer
	Services []models.Service
	Schedule []models.Schedule
}

// GetTrainerPage returns a trainer with their services and weekly schedule,
// nil when the trainer does not exist.
func (s *CatalogService) GetTrainerPage(trainerID int64) (*TrainerPage, error) {
	trainer, err := s.trainerRepo.GetTrainerByID(trainerID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, nil
	}

	services, err := s.catalogRepo.GetTrainerServices(trainerID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.scheduleRepo.GetTrainerSchedule(trainerID)
	if err != nil {
		return nil, err
	}

	return &TrainerPage{Trainer: trainer, Services: services, Schedule: schedule}, nil
}

// GetTrainerByUser returns the trainer profile linked to a user account,
// nil when the user has none.
func (s *CatalogService) GetTrainerByUser(userID int64) (*models.Trainer, error) {
	return s.trainerRepo.GetTrainerByUserID(userID)
}

// GetWeeklySchedule returns every active slot in weekly order
func (s *CatalogService) GetWeeklySchedule() ([]models.Schedule, error) {
	return s.scheduleRepo.GetWeeklySchedule()
}

// GetFAQs returns active FAQ entries in display order
func (s *CatalogService) GetFAQs() ([]models.FAQ, error) {
	return s.faqRepo.GetActiveFAQs()
}
