package chat

import (
	"strings"
	"testing"

	"patient-records-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestIsTreatmentQuestion(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"What treatment options are there?", true},
		{"Is there a CURE?", true},
		{"how do I manage this", true},
		{"any remedy", true},
		{"Which medications should I take", true},
		{"What are the symptoms?", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTreatmentQuestion(tt.text))
		})
	}
}

func TestRespond(t *testing.T) {
	hypertension := &models.Patient{Disease: "Hypertension", DoctorAssigned: "Sarah Johnson"}

	t.Run("treatment question uses the disease response", func(t *testing.T) {
		reply := Respond(hypertension, "What treatment is available?")
		assert.True(t, strings.HasPrefix(reply, "Following are the treatments for Hypertension:"))
		assert.Contains(t, reply, "2. Diuretics - Help rid your body of sodium and water")
		assert.True(t, strings.HasSuffix(reply, "Your doctor will determine which treatments are most appropriate for your specific condition."))
	})

	t.Run("treatment question for unlisted disease", func(t *testing.T) {
		reply := Respond(&models.Patient{Disease: "Asthma"}, "any therapy?")
		assert.Equal(t, genericTreatmentResponse, reply)
	})

	t.Run("other questions get the referral sentence", func(t *testing.T) {
		reply := Respond(hypertension, "Tell me more")
		assert.Equal(t, "Here's some information about Hypertension. Please consult with Dr. Sarah Johnson for more details.", reply)
	})

	t.Run("referral sentence without patient data", func(t *testing.T) {
		reply := Respond(nil, "hello")
		assert.Equal(t, "Here's some information about this condition. Please consult with Dr. your doctor for more details.", reply)
	})
}
