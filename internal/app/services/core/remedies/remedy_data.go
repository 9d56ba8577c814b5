package remedies

import "patient-records-service/internal/app/models"

const jamaAbstractLink = "https://jamanetwork.com/journals/jama/article-abstract/2721183"

var remediesByDisease = map[string]models.Remedies{
	"Breast Cancer": {
		PrimaryRemedies: []models.PrimaryRemedy{
			{
				Title:       "Targeted therapy with activin receptor-like kinase 1 (ALK1) inhibitors",
				Description: "The study highlights the importance of ALK1 in shaping an immunosuppressive landscape in breast cancer metastases. Inhibiting ALK1 may help restore an anti-tumor immune response.",
				Evidence:    "Evidence: Chunk 199",
				PaperLink:   jamaAbstractLink,
				PaperTitle:  "ALK1 Signaling in Breast Cancer - JAMA Oncology",
			},
			{
				Title:       "Immunotherapy",
				Description: "The research suggests that a monocytic lineage plays a crucial role in immunosuppression. Immunotherapy targeting this lineage may help reinvigorate the immune system to combat breast cancer.",
				Evidence:    "Evidence: Chunk 74",
				PaperLink:   jamaAbstractLink,
				PaperTitle:  "Immunotherapy in Metastatic Breast Cancer - JAMA Oncology",
			},
			{
				Title:       "Combination therapy",
				Description: "Considering the immunosuppressive landscape in breast cancer metastases, combining targeted therapy with immunotherapy may be an effective approach to enhance treatment outcomes.",
				Evidence:    "Evidence: Chunk 1024",
				PaperLink:   jamaAbstractLink,
				PaperTitle:  "Combined Approaches for Breast Cancer Treatment - JAMA Oncology",
			},
		},
		EmergingRemedies: []models.EmergingRemedy{
			{
				Title:       "ALK1-targeting monoclonal antibodies",
				Description: "The study introduces the concept of targeting ALK1 to reverse immunosuppression in breast cancer. Further research is needed to explore the potential benefits and safety of ALK1-targeting monoclonal antibodies.",
				Benefit:     "Reversing immunosuppression",
				Relevance:   "Breast cancer metastases",
			},
		},
		AdditionalNotes: []string{
			"Precautions: Further studies are necessary to determine the optimal dosing and duration of ALK1 inhibitors and immunotherapy.",
			"Contraindications: Patients with severe immunosuppression or compromised immune systems may not be suitable candidates for immunotherapy.",
			"Complementary therapies: Combination with other targeted therapies or chemotherapy may be explored to enhance treatment outcomes.",
		},
	},
	"Type 2 Diabetes": {
		PrimaryRemedies: []models.PrimaryRemedy{
			{
				Title:       "Lifestyle modifications",
				Description: "Diet control, regular exercise, and weight management are fundamental in managing Type 2 Diabetes.",
				Evidence:    "Evidence: Medical guidelines",
				PaperLink:   jamaAbstractLink,
				PaperTitle:  "Lifestyle Interventions for Type 2 Diabetes - JAMA",
			},
			{
				Title:       "Oral medications",
				Description: "Metformin is typically the first-line medication for controlling blood sugar levels in Type 2 Diabetes.",
				Evidence:    "Evidence: Standard practice",
			},
		},
		EmergingRemedies: []models.EmergingRemedy{
			{
				Title:       "GLP-1 receptor agonists",
				Description: "These medications help slow digestion and help lower blood sugar levels.",
				Benefit:     "Weight loss and blood sugar control",
				Relevance:   "Adult Type 2 Diabetes patients",
			},
		},
		AdditionalNotes: []string{
			"Regular monitoring of blood glucose levels is essential.",
			"Kidney function should be assessed periodically while on medication.",
			"Proper foot care and regular eye examinations are important to prevent complications.",
		},
	},
	"Hypertension": {
		PrimaryRemedies: []models.PrimaryRemedy{
			{
				Title:       "Lifestyle modifications",
				Description: "Reducing sodium intake, regular physical activity, maintaining healthy weight, and limiting alcohol consumption.",
				Evidence:    "Evidence: Clinical guidelines",
			},
			{
				Title:       "Antihypertensive medications",
				Description: "Depending on individual factors, medications like ACE inhibitors, ARBs, calcium channel blockers, or diuretics may be prescribed.",
				Evidence:    "Evidence: Standard protocol",
			},
		},
		EmergingRemedies: []models.EmergingRemedy{
			{
				Title:       "Renal denervation",
				Description: "A procedure that uses ultrasound or radiofrequency energy to modify nerve activity between the kidneys and the brain.",
				Benefit:     "Blood pressure reduction in resistant hypertension",
				Relevance:   "Patients with resistant hypertension",
			},
		},
		AdditionalNotes: []string{
			"Regular blood pressure monitoring is essential.",
			"Medication adherence is crucial for effective blood pressure control.",
			"Combination therapy may be necessary for optimal blood pressure management.",
		},
	},
}
