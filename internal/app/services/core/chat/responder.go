package chat

import (
	"fmt"
	"strings"

	"patient-records-service/internal/app/models"
)

var treatmentKeywords = []string{
	"treatment",
	"therapy",
	"cure",
	"medication",
	"remedy",
	"heal",
	"manage",
	"treat",
}

var treatmentResponses = map[string]string{
	"Breast Cancer": `Following are the treatments for Breast Cancer:

1. Surgery - Removing the cancer tissue through lumpectomy or mastectomy
2. Radiation therapy - Using high-energy rays to destroy cancer cells
3. Chemotherapy - Using drugs to kill cancer cells throughout the body
4. Hormone therapy - Blocking hormones that fuel certain breast cancers
5. Targeted therapy - Using drugs that target specific abnormalities in cancer cells
6. Immunotherapy - Helping your immune system fight cancer

Your doctor will recommend which treatments are most appropriate based on your specific diagnosis.`,

	"Type 2 Diabetes": `Following are the treatments for Type 2 Diabetes:

1. Lifestyle changes - Diet modifications, regular exercise, and weight management
2. Oral medications - Metformin and other drugs that improve insulin sensitivity
3. Injectable medications - GLP-1 receptor agonists and insulin therapy
4. Blood sugar monitoring - Regular testing to manage glucose levels
5. Regular medical checkups - To prevent and treat complications

Your treatment plan will be personalized based on your specific needs and health status.`,

	"Hypertension": `Following are the treatments for Hypertension:

1. Lifestyle modifications - Reducing sodium intake, regular exercise, weight management
2. Diuretics - Help rid your body of sodium and water
3. ACE inhibitors and ARBs - Relaxing blood vessels by blocking certain natural chemicals
4. Calcium channel blockers - Preventing calcium from entering cells of the heart and blood vessels
5. Beta blockers - Reducing your heart rate and output of blood, lowering pressure
6. Regular blood pressure monitoring - Essential for tracking treatment effectiveness

Your doctor will determine which treatments are most appropriate for your specific condition.`,
}

const genericTreatmentResponse = `Common treatment approaches include:

1. Medication therapy
2. Lifestyle modifications
3. Regular monitoring
4. Follow-up with healthcare providers

Please consult with your doctor for a treatment plan tailored specifically to your condition.`

const generalInformationFormat = "Here's some information about %s. Please consult with Dr. %s for more details."

// IsTreatmentQuestion is a case-insensitive keyword match. Substrings count,
// so "treatments" and "managed" qualify.
func IsTreatmentQuestion(text string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range treatmentKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// Respond builds the bot reply for text. patient may be nil.
func Respond(patient *models.Patient, text string) string {
	if IsTreatmentQuestion(text) {
		return TreatmentResponse(patient)
	}

	disease, doctor := "this condition", "your doctor"
	if patient != nil {
		if patient.Disease != "" {
			disease = patient.Disease
		}
		if patient.DoctorAssigned != "" {
			doctor = patient.DoctorAssigned
		}
	}
	return fmt.Sprintf(generalInformationFormat, disease, doctor)
}

func TreatmentResponse(patient *models.Patient) string {
	if patient == nil {
		return genericTreatmentResponse
	}
	if response, ok := treatmentResponses[patient.Disease]; ok {
		return response
	}
	return genericTreatmentResponse
}
