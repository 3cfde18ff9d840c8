package repository

import (
	"database/sql"
	"fmt"

	"elevix/internal/database"
	"elevix/internal/models"
)

// CatalogRepository handles database operations for services, pricing plans
// and service features.
type CatalogRepository struct {
	db *database.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *database.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const serviceColumns = `id, name, COALESCE(description, ''), duration, category,
	is_active, COALESCE(trainer_id, 0), created_at, updated_at`

func scanService(row interface{ Scan(...interface{}) error }) (*models.Service, error) {
	s := &models.Service{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Duration,
		&s.Category,
		&s.IsActive,
		&s.TrainerID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateService inserts a new service
func (r *CatalogRepository) CreateService(s *models.Service) (int64, error) {
	if !models.ValidCategory(s.Category) {
		return 0, fmt.Errorf("unknown service category: %s", s.Category)
	}

	var trainerID interface{}
	if s.TrainerID != 0 {
		trainerID = s.TrainerID
	}

	query := `
		INSERT INTO services (name, description, duration, category, is_active, trainer_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, s.Name, s.Description, s.Duration, s.Category, s.IsActive, trainerID)
	if err != nil {
		return 0, fmt.Errorf("failed to create service: %w", err)
	}
	return id, nil
}

// GetServiceByID retrieves a service by ID, nil when not found
func (r *CatalogRepository) GetServiceByID(id int64) (*models.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE id = ?"
	s, err := scanService(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return s, nil
}

// GetActiveServices retrieves active services ordered by category and name
func (r *CatalogRepository) GetActiveServices() ([]models.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE is_active = ? ORDER BY category, name"
	return r.queryServices(query, true)
}

// GetTrainerServices retrieves a trainer's active services
func (r *CatalogRepository) GetTrainerServices(trainerID int64) ([]models.Service, error) {
	query := "SELECT " + serviceColumns + " FROM services WHERE trainer_id = ? AND is_active = ? ORDER BY name"
	return r.queryServices(query, trainerID, true)
}

func (r *CatalogRepository) queryServices(query string, args ...interface{}) ([]models.Service, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query services: %w", err)
	}
	defer rows.Close()

	var services []models.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, *s)
	}

	return services, rows.Err()
}

// SetServiceActive soft-enables or soft-disables a service. Services are never
// hard-deleted while bookings reference them.
func (r *CatalogRepository) SetServiceActive(id int64, active bool) error {
	query := "UPDATE services SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, active, id); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// CreatePlan inserts a pricing plan for a service
func (r *CatalogRepository) CreatePlan(p *models.PricingPlan) (int64, error) {
	var sessions interface{}
	if p.SessionsCount > 0 {
		sessions = p.SessionsCount
	}

	query := `
		INSERT INTO pricing_plans (service_id, name, plan_type, price, sessions_count, discount_percent, is_default)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, p.ServiceID, p.Name, p.PlanType, p.Price,
		sessions, p.DiscountPercent, p.IsDefault)
	if err != nil {
		return 0, fmt.Errorf("failed to create pricing plan: %w", err)
	}
	return id, nil
}

// GetPlanByID retrieves a pricing plan, nil when not found
func (r *CatalogRepository) GetPlanByID(id int64) (*models.PricingPlan, error) {
	query := `
		SELECT id, service_id, name, plan_type, price, COALESCE(sessions_count, 0),
			discount_percent, is_default, created_at, updated_at
		FROM pricing_plans
		WHERE id = ?
	`
	p := &models.PricingPlan{}
	err := r.db.QueryRow(query, id).Scan(
		&p.ID,
		&p.ServiceID,
		&p.Name,
		&p.PlanType,
		&p.Price,
		&p.SessionsCount,
		&p.DiscountPercent,
		&p.IsDefault,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pricing plan: %w", err)
	}
	return p, nil
}

// GetServicePlans retrieves a service's plans ordered by price
func (r *CatalogRepository) GetServicePlans(serviceID int64) ([]models.PricingPlan, error) {
	query := `
		SELECT id, service_id, name, plan_type, price, COALESCE(sessions_count, 0),
			discount_percent, is_default, created_at, updated_at
		FROM pricing_plans
		WHERE service_id = ?
		ORDER BY price
	`
	rows, err := r.db.Query(query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pricing plans: %w", err)
	}
	defer rows.Close()

	var plans []models.PricingPlan
	for rows.Next() {
		var p models.PricingPlan
		if err := rows.Scan(
			&p.ID,
			&p.ServiceID,
			&p.Name,
			&p.PlanType,
			&p.Price,
			&p.SessionsCount,
			&p.DiscountPercent,
			&p.IsDefault,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pricing plan: %w", err)
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}

// UpdatePlanSessions changes a plan's session count. Existing bookings keep
// their snapshotted counters.
func (r *CatalogRepository) UpdatePlanSessions(id int64, sessionsCount int) error {
	var sessions interface{}
	if sessionsCount > 0 {
		sessions = sessionsCount
	}
	query := "UPDATE pricing_plans SET sessions_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	if _, err := r.db.Exec(query, sessions, id); err != nil {
		return fmt.Errorf("failed to update pricing plan: %w", err)
	}
	return nil
}

// CreateFeature inserts one service feature line
func (r *CatalogRepository) CreateFeature(f *models.ServiceFeature) (int64, error) {
	query := `
		INSERT INTO service_features (service_id, feature_text, icon, sort_order)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, f.ServiceID, f.FeatureText, f.Icon, f.SortOrder)
	if err != nil {
		return 0, fmt.Errorf("failed to create service feature: %w", err)
	}
	return id, nil
}

// GetServiceFeatures retrieves a service's features in display order
func (r *CatalogRepository) GetServiceFeatures(serviceID int64) ([]models.ServiceFeature, error) {
	query := `
		SELECT id, service_id, feature_text, COALESCE(icon, ''), sort_order
		FROM service_features
		WHERE service_id = ?
		ORDER BY sort_order
	`
	rows, err := r.db.Query(query, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service features: %w", err)
	}
	defer rows.Close()

	var features []models.ServiceFeature
	for rows.Next() {
		var f models.ServiceFeature
		if err := rows.Scan(&f.ID, &f.ServiceID, &f.FeatureText, &f.Icon, &f.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan service feature: %w", err)
		}
		features = append(features, f)
	}

	return features, rows.Err()
}

// WipeCatalog deletes all features, plans and services in one transaction
// (seed command)
func (r *CatalogRepository) WipeCatalog() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin wipe: %w", err)
	}

	for _, table := range []string{"service_features", "pricing_plans", "services"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}

	return tx.Commit()
}
