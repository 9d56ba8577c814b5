package constvars

// Canonical patient sentinels used when upstream data is missing.
const (
	PatientUnknownName      = "Unknown"
	PatientUnknownGender    = "Not Specified"
	PatientUnknownDisease   = "Not Available"
	PatientUnknownTreatment = "No treatment plan available"
	PatientUnknownContact   = "N/A"
	PatientUnassignedDoctor = "Unassigned"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

const (
	PatientSortByName    = "name"
	PatientSortByAge     = "age"
	PatientSortByDisease = "disease"
)

const (
	PatientEventCreated = "patient.created"
	PatientEventUpdated = "patient.updated"
	PatientEventDeleted = "patient.deleted"
)

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

const (
	RemediesDisclaimer         = "Please note that these recommendations are based on research and should not be used as a substitute for professional medical advice."
	RemediesNotAvailableNotice = "No specific remedies information available for this condition."
)
