package requests

type StartChatSessionRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
}

type SendChatMessageRequest struct {
	Text string `json:"text" validate:"required,not_blank,max=2000"`
}
