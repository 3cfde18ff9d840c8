package models

import "testing"

func TestPricePerSession(t *testing.T) {
	tests := []struct {
		name string
		plan PricingPlan
		want float64
	}{
		{"single plan", PricingPlan{PlanType: PlanSingle, Price: 900}, 900},
		{"ten session package", PricingPlan{PlanType: PlanPackage, Price: 8000, SessionsCount: 10}, 800},
		{"nine session package", PricingPlan{PlanType: PlanPackage, Price: 7250, SessionsCount: 9}, 7250.0 / 9},
		{"package without count falls back", PricingPlan{PlanType: PlanPackage, Price: 500}, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.plan.PricePerSession(); got != tt.want {
				t.Errorf("PricePerSession() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryGroupTraining, CategoryPersonalTraining, CategoryMassage} {
		if !ValidCategory(c) {
			t.Errorf("Expected %s to be valid", c)
		}
	}
	if ValidCategory("yoga") {
		t.Error("Expected unknown category to be invalid")
	}
}

func TestCategoryLabel(t *testing.T) {
	s := &Service{Category: CategoryMassage}
	if s.CategoryLabel() != "Масаж" {
		t.Errorf("Unexpected label %q", s.CategoryLabel())
	}

	s.Category = "custom"
	if s.CategoryLabel() != "custom" {
		t.Error("Expected unknown category to fall back to its raw value")
	}
}
