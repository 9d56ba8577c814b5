package models

type Remedies struct {
	PrimaryRemedies  []PrimaryRemedy  `json:"primary_remedies"`
	EmergingRemedies []EmergingRemedy `json:"emerging_remedies"`
	AdditionalNotes  []string         `json:"additional_notes"`
	Disclaimer       string           `json:"disclaimer"`
}

type PrimaryRemedy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Evidence    string `json:"evidence"`
	PaperLink   string `json:"paper_link,omitempty"`
	PaperTitle  string `json:"paper_title,omitempty"`
}

type EmergingRemedy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefit     string `json:"benefit"`
	Relevance   string `json:"relevance"`
}
