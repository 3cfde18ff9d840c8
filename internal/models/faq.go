package models

import "time"

// FAQ is a frequently-asked question shown on the landing page
type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	SortOrder int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
