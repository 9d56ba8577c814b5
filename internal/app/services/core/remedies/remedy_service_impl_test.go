package remedies

import (
	"testing"

	"patient-records-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemedyService_FindByDisease(t *testing.T) {
	service := NewRemedyService()

	t.Run("known disease", func(t *testing.T) {
		remedies, ok := service.FindByDisease("Hypertension")
		require.True(t, ok)
		require.Len(t, remedies.PrimaryRemedies, 2)
		assert.Equal(t, "Lifestyle modifications", remedies.PrimaryRemedies[0].Title)
		assert.Equal(t, "Renal denervation", remedies.EmergingRemedies[0].Title)
		assert.Len(t, remedies.AdditionalNotes, 3)
		assert.Equal(t, constvars.RemediesDisclaimer, remedies.Disclaimer)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		_, ok := service.FindByDisease("  Breast Cancer ")
		assert.True(t, ok)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		_, ok := service.FindByDisease("hypertension")
		assert.False(t, ok)
	})

	t.Run("unknown disease", func(t *testing.T) {
		remedies, ok := service.FindByDisease(constvars.PatientUnknownDisease)
		assert.False(t, ok)
		assert.Nil(t, remedies)
	})

	t.Run("results do not share the table", func(t *testing.T) {
		first, _ := service.FindByDisease("Type 2 Diabetes")
		first.AdditionalNotes[0] = "changed"

		second, _ := service.FindByDisease("Type 2 Diabetes")
		assert.Equal(t, "Regular monitoring of blood glucose levels is essential.", second.AdditionalNotes[0])
	})
}
