package models

import "time"

type PatientEvent struct {
	Type       string    `json:"type"`
	PatientID  string    `json:"patient_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Origin     string    `json:"origin"`
}
