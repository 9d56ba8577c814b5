package constvars

import (
	"fmt"
	"net/url"
)

// Upstream patient backend endpoints.
const (
	UpstreamPatientListPath = "/patient_all"
	UpstreamPatientPath     = "/patient"

	// The record path carries the literal "{patient_id}" segment the
	// backend declares; the id itself travels in the query string.
	upstreamPatientRecordFormat = "/patientRecord/{patient_id}?id=%s"
	upstreamPatientItemFormat   = "/patient/%s"
)

func UpstreamPatientRecordPath(patientID string) string {
	return fmt.Sprintf(upstreamPatientRecordFormat, url.QueryEscape(patientID))
}

func UpstreamPatientItemPath(patientID string) string {
	return fmt.Sprintf(upstreamPatientItemFormat, url.PathEscape(patientID))
}
