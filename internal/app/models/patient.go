package models

import (
	"strings"
	"time"
)

// Patient is the canonical, normalized patient consumed by every view.
type Patient struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	Disease        string   `json:"disease"`
	Symptoms       []string `json:"symptoms"`
	Medications    []string `json:"medications"`
	Treatment      string   `json:"treatment"`
	LastVisit      *string  `json:"last_visit,omitempty"`
	NextVisit      *string  `json:"next_visit,omitempty"`
	ContactNumber  string   `json:"contact_number"`
	DoctorAssigned string   `json:"doctor_assigned"`
}

var visitLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// HasUpcomingVisit reports whether the next visit parses to a moment after now.
func (p Patient) HasUpcomingVisit(now time.Time) bool {
	if p.NextVisit == nil {
		return false
	}
	value := strings.TrimSpace(*p.NextVisit)
	for _, layout := range visitLayouts {
		if visit, err := time.Parse(layout, value); err == nil {
			return visit.After(now)
		}
	}
	return false
}

// Matches is the case-insensitive dashboard search over name and disease,
// extended to the assigned doctor when includeDoctor is set.
func (p Patient) Matches(term string, includeDoctor bool) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Disease), term) {
		return true
	}
	return includeDoctor && strings.Contains(strings.ToLower(p.DoctorAssigned), term)
}

type PatientStats struct {
	Total    int `json:"total"`
	Male     int `json:"male"`
	Female   int `json:"female"`
	Upcoming int `json:"upcoming"`
}
