package models

import "time"

// Service categories (fixed enum)
const (
	CategoryGroupTraining    = "group_training"
	CategoryPersonalTraining = "personal_training"
	CategoryMassage          = "massage"
)

var categoryLabels = map[string]string{
	CategoryGroupTraining:    "Групове тренування",
	CategoryPersonalTraining: "Персональне тренування",
	CategoryMassage:          "Масаж",
}

// ValidCategory reports whether c is a known service category
func ValidCategory(c string) bool {
	_, ok := categoryLabels[c]
	return ok
}

// Service is an offering of the gym. Services are soft-disabled via IsActive,
// never hard-deleted while bookings reference them.
type Service struct {
	ID          int64
	Name        string
	Description string
	Duration    float64 // hours
	Category    string
	IsActive    bool
	TrainerID   int64 // 0 when no owning trainer
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded relations (populated by the catalog service for display)
	Plans    []PricingPlan
	Features []ServiceFeature
}

// CategoryLabel returns the Ukrainian display label for the category
func (s *Service) CategoryLabel() string {
	if label, ok := categoryLabels[s.Category]; ok {
		return label
	}
	return s.Category
}

// Pricing plan types
const (
	PlanSingle  = "single"
	PlanPackage = "package"
)

// PricingPlan is a priced offering tied to a service, either single-use
// or a multi-session package.
type PricingPlan struct {
	ID              int64
	ServiceID       int64
	Name            string
	PlanType        string
	Price           float64
	SessionsCount   int // 0 for single-session plans
	DiscountPercent float64
	IsDefault       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PricePerSession returns the derived per-session price: price divided by the
// session count for package plans, the plain price otherwise.
func (p *PricingPlan) PricePerSession() float64 {
	if p.SessionsCount > 0 {
		return p.Price / float64(p.SessionsCount)
	}
	return p.Price
}

// ServiceFeature is one line of a service's ordered feature list
type ServiceFeature struct {
	ID          int64
	ServiceID   int64
	FeatureText string
	Icon        string
	SortOrder   int
}
