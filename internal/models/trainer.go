package models

import (
	"strings"
	"time"
)

// Trainer specializations (fixed enum)
const (
	SpecMMA      = "mma"
	SpecBoxing   = "boxing"
	SpecMassage  = "massage"
	SpecFitness  = "fitness"
	SpecYoga     = "yoga"
	SpecCrossfit = "crossfit"
)

var specializationLabels = map[string]string{
	SpecMMA:      "ММА",
	SpecBoxing:   "Бокс",
	SpecMassage:  "Масаж",
	SpecFitness:  "Фітнес",
	SpecYoga:     "Йога",
	SpecCrossfit: "Кросфіт",
}

// ValidSpecialization reports whether s is a known specialization
func ValidSpecialization(s string) bool {
	_, ok := specializationLabels[s]
	return ok
}

// Trainer represents a gym trainer profile
type Trainer struct {
	ID             int64
	UserID         int64 // 0 when the trainer has no linked account
	FirstName      string
	LastName       string
	MiddleName     string
	Age            int
	Gender         string // "M" or "F"
	Experience     int    // years
	Specialization string
	Description    string
	Graduate       string
	WorkExperience string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the trainer's display name
func (t *Trainer) FullName() string {
	parts := []string{}
	for _, p := range []string{t.LastName, t.FirstName, t.MiddleName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// SpecializationLabel returns the Ukrainian display label for the specialization
func (t *Trainer) SpecializationLabel() string {
	if label, ok := specializationLabels[t.Specialization]; ok {
		return label
	}
	return t.Specialization
}
