package join

import (
	"verdant/internal/constants"
	"verdant/internal/models"
)

// Calendar-window classification of schedule entries. The server's upcoming
// endpoint is the primary source of due work; these helpers derive the
// dashboard's counters from the returned due dates and also support the older
// client-computed window when a deployment lacks the endpoint.

// IsUpcoming reports whether due falls within [today, today+7], endpoints
// inclusive.
func IsUpcoming(due, today models.Date) bool {
	return !due.Before(today) && !due.After(today.AddDays(constants.UpcomingWindowDays))
}

// IsOverdue reports whether due is strictly before today. Today itself is
// due, not overdue.
func IsOverdue(due, today models.Date) bool {
	return due.Before(today)
}

// CountOverdue counts schedule entries whose due date has passed.
func CountOverdue(entries []models.UpcomingCareLog, today models.Date) int {
	n := 0
	for _, e := range entries {
		if IsOverdue(e.DueDate, today) {
			n++
		}
	}
	return n
}

// FilterWindow keeps only entries inside the upcoming window. Used when the
// schedule is assembled client-side from plan start dates instead of the
// server endpoint.
func FilterWindow(entries []models.UpcomingCareLog, today models.Date) []models.UpcomingCareLog {
	kept := []models.UpcomingCareLog{}
	for _, e := range entries {
		if IsUpcoming(e.DueDate, today) {
			kept = append(kept, e)
		}
	}
	return kept
}
