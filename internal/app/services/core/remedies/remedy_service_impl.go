package remedies

import (
	"strings"

	"patient-records-service/internal/app/contracts"
	"patient-records-service/internal/app/models"
	"patient-records-service/internal/pkg/constvars"
)

type remedyService struct {
	table map[string]models.Remedies
}

func NewRemedyService() contracts.RemedyService {
	return &remedyService{table: remediesByDisease}
}

// FindByDisease matches the disease name exactly after trimming. The result
// is a copy carrying the shared disclaimer.
func (s *remedyService) FindByDisease(disease string) (*models.Remedies, bool) {
	entry, ok := s.table[strings.TrimSpace(disease)]
	if !ok {
		return nil, false
	}

	remedies := models.Remedies{
		PrimaryRemedies:  append([]models.PrimaryRemedy(nil), entry.PrimaryRemedies...),
		EmergingRemedies: append([]models.EmergingRemedy(nil), entry.EmergingRemedies...),
		AdditionalNotes:  append([]string(nil), entry.AdditionalNotes...),
		Disclaimer:       constvars.RemediesDisclaimer,
	}
	return &remedies, true
}
