package constvars

const (
	URLParamPatientID = "patient_id"
	URLParamSessionID = "session_id"
)

const (
	URLQueryParamSearch  = "search"
	URLQueryParamDisease = "disease"
	URLQueryParamSort    = "sort"
)
