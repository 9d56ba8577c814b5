package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient-related messages
	GetPatientsSuccessMessage      = "get patients successfully"
	GetPatientStatsSuccessMessage  = "get patient statistics successfully"
	GetDiseasesSuccessMessage      = "get diseases successfully"
	GetProfileSuccessMessage       = "get patient profile successfully"
	GetSelectedSuccessMessage      = "get selected patient successfully"
	RefreshPatientsSuccessMessage  = "patients refreshed successfully"
	CreatePatientSuccessMessage    = "patient created successfully"
	UpdatePatientSuccessMessage    = "patient updated successfully"
	DeletePatientSuccessMessage    = "patient deleted successfully"
	ClearCacheSuccessMessage       = "cache cleared successfully"
	SetAuthTokenSuccessMessage     = "auth token stored successfully"
	ClearAuthTokenSuccessMessage   = "auth token cleared successfully"
	StartChatSessionSuccessMessage = "chat session started successfully"
	GetChatSessionSuccessMessage   = "get chat session successfully"
	SendChatMessageSuccessMessage  = "chat message answered successfully"
	EndChatSessionSuccessMessage   = "chat session ended successfully"
)
