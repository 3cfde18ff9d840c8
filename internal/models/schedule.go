package models

// Weekday display names, indexed by day_of_week (0 = Monday, per the schedule table)
var weekdayLabels = [7]string{
	"Понеділок", "Вівторок", "Середа", "Четвер", "П'ятниця", "Субота", "Неділя",
}

// Schedule is one weekly slot of a trainer's timetable.
// Unique per (trainer, day_of_week, start_time).
type Schedule struct {
	ID              int64
	TrainerID       int64
	ServiceID       int64
	DayOfWeek       int    // 0–6, Monday first
	StartTime       string // "HH:MM"
	EndTime         string
	MaxParticipants int
	IsActive        bool
}

// DayLabel returns the Ukrainian weekday name
func (s *Schedule) DayLabel() string {
	if s.DayOfWeek >= 0 && s.DayOfWeek < len(weekdayLabels) {
		return weekdayLabels[s.DayOfWeek]
	}
	return ""
}

// TimeRange returns "start – end" for display
func (s *Schedule) TimeRange() string {
	return s.StartTime + " – " + s.EndTime
}
